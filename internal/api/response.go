// Package api defines the uniform response envelope, the error-code
// taxonomy and pagination helpers shared by every handler.
package api

import "github.com/gofiber/fiber/v2"

// Envelope is the wire shape of every response: {ok:true,data} on success,
// {ok:false,error} on failure.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

type Error struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{OK: true, Data: data})
}

// Created writes a 201 success envelope.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{OK: true, Data: data})
}

// Fail writes an error envelope with the given status.
func Fail(c *fiber.Ctx, status int, message, code string, details any) error {
	return c.Status(status).JSON(Envelope{
		OK:    false,
		Error: &Error{Message: message, Code: code, Details: details},
	})
}

// DBError maps a data-access failure to 503, preserving the driver message
// as diagnostic detail.
func DBError(c *fiber.Ctx, message string, err error) error {
	return Fail(c, fiber.StatusServiceUnavailable, message, CodeDBError, err.Error())
}

// NotFound writes the standard 404 envelope.
func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message, CodeNotFound, nil)
}

// Message is the payload used by mutations that return no entity body.
type Message struct {
	Message string `json:"message"`
}
