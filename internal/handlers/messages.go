package handlers

import (
	"net/http"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
)

// playerMessages is the static home-page content. Read-only; never persisted.
var playerMessages = []models.PlayerMessage{
	{Author: "Rafael", Role: "Capitão", Message: "Parabéns, doutor! A torcida toda está com você hoje."},
	{Author: "Gustavo", Role: "Goleiro", Message: "Dedico a próxima defesa difícil a você. Feliz aniversário!"},
	{Author: "Henrique", Role: "Camisa 10", Message: "Meu próximo gol é seu, doutor. Aproveite o seu dia!"},
	{Author: "Comissão Técnica", Role: "", Message: "Obrigado por tanto carinho com o clube. Grande abraço!"},
}

type MessagesResponse struct {
	Success  bool                   `json:"success"`
	Messages []models.PlayerMessage `json:"messages"`
}

// GetMessages serves the static congratulatory messages for the home page.
func GetMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessagesResponse{
		Success:  true,
		Messages: playerMessages,
	})
}
