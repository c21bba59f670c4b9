package http

const ErrInvalidJsonPayload = "invalid JSON payload"
