package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is a short message on a colored background. The card view always
// renders the message in a fixed foreground color regardless of background,
// so only the background color is persisted.
type Card struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Namespace  string             `bson:"namespace" json:"-"`
	IdentityID string             `bson:"identity_id" json:"-"`
	Text       string             `bson:"text" json:"text"`
	Background string             `bson:"background" json:"background"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// CardTemplate pre-fills both card fields. Applying a template fully
// overwrites the current text and color; there is no merge.
type CardTemplate struct {
	Name       string `json:"name"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

// CardTemplates returns the fixed set of named templates, in display order.
func CardTemplates() []CardTemplate {
	return []CardTemplate{
		{Name: "aniversario", Text: "Feliz aniversário! Que seu dia seja maravilhoso!", Background: "#ff80ab"},
		{Name: "saudade", Text: "Estou morrendo de saudade de você!", Background: "#90caf9"},
		{Name: "parabens", Text: "Parabéns! Você merece o mundo inteiro!", Background: "#ffd54f"},
		{Name: "carinho", Text: "Você é a pessoa mais especial que eu conheço.", Background: "#a5d6a7"},
	}
}
