package handler

import (
	"github.com/gofiber/fiber/v2"

	"backendservice/internal/service"
)

// AcceptTransfer creates a transfer from the request body and returns its id.
func AcceptTransfer(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := svc.Accept(c.UserContext(), c.Body())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// ListTransfers returns every transfer as a JSON array.
func ListTransfers(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetTransfer responds {"asset": <asset>}.
func GetTransfer(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		asset, err := svc.GetAsset(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"asset": asset})
	}
}

// GetTransferContents responds {"asset": <contents>}.
func GetTransferContents(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contents, err := svc.GetContents(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"asset": contents})
	}
}

// RefreshTransferAsset resolves the asset again and responds {"asset": <asset>}.
func RefreshTransferAsset(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		asset, err := svc.RefreshAsset(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"asset": asset})
	}
}

// UpdateTransferContents stores the fetched contents of a transfer.
func UpdateTransferContents(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.UpdateContents(c.UserContext(), c.Params("id"), c.Body()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteTransfer removes a transfer.
func DeleteTransfer(svc service.TransferService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
