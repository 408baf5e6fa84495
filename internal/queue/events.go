package queue

import "go.mongodb.org/mongo-driver/bson/primitive"

// Routing keys on the accounts topic exchange.
const (
	KeyMailRequested  = "mail.requested"
	KeyUserRegistered = "user.registered"
)

// MailRequested asks the notifier worker to deliver one message.
type MailRequested struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type UserRegistered struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}
