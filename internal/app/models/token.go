package models

import "time"

type Token struct {
	Token   string     `json:"token"`
	Expires *time.Time `json:"expires,omitempty"`
}

type Tokens struct {
	Access  Token `json:"access"`
	Refresh Token `json:"refresh"`
}

func (t *Tokens) IsComplete() bool {
	return t != nil && t.Access.Token != "" && t.Refresh.Token != ""
}
