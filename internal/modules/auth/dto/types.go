package dto

import "time"

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AccountOutput struct {
	ID          string
	Name        string
	Email       string
	DisplayName string
	SignedInAt  time.Time
}
