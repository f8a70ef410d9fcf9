package model

type contextKey string

// UserIDKey locates the authenticated admin's id in a request context.
const UserIDKey contextKey = "user_id"
