package domain

type MessageID string

// Reactions maps an emoji to the users who reacted with it, in reaction order.
type Reactions map[string][]string
