package handler

import (
	"github.com/gofiber/fiber/v2"

	"backendservice/internal/service"
)

const defaultRandomSize = "1KB"

// sendJSONBytes writes an already encoded JSON document.
func sendJSONBytes(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// CreateContent stores the request body as a new content.
func CreateContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Create(c.UserContext(), c.Body())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListContents returns every content as a JSON array.
func ListContents(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetContent returns the stored document verbatim; a content without a body yields an empty 200.
func GetContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if content.Data == nil {
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return sendJSONBytes(c, content.Data)
	}
}

// UpdateContent replaces the document of an existing content.
func UpdateContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Update(c.UserContext(), c.Params("id"), c.Body()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteContent removes a content.
func DeleteContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// RandomContent generates a document of ?size= (default 1KB) without storing it.
func RandomContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Random(c.UserContext(), c.Query("size", defaultRandomSize))
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendJSONBytes(c, doc)
	}
}

// CreateRandomContent generates a document of ?size= (default 1KB) and stores it.
func CreateRandomContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.CreateRandom(c.UserContext(), c.Query("size", defaultRandomSize))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ExportContent copies a content to object storage and returns a download link.
func ExportContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
