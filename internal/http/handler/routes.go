package handler

import (
	"github.com/gofiber/fiber/v2"

	"backendservice/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Static segments are registered before /:id so they are never taken for an id.
func RegisterRoutes(app *fiber.App, db Pinger, contentSvc service.ContentService, transferSvc service.TransferService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	v1 := app.Group("/v1")

	contents := v1.Group("/contents")
	contents.Post("/", CreateContent(contentSvc))
	contents.Get("/", ListContents(contentSvc))
	contents.Get("/random", RandomContent(contentSvc))
	contents.Get("/create/random", CreateRandomContent(contentSvc))
	contents.Get("/:id/export", ExportContent(contentSvc))
	contents.Get("/:id", GetContent(contentSvc))
	contents.Put("/:id", UpdateContent(contentSvc))
	contents.Delete("/:id", DeleteContent(contentSvc))

	v1.Post("/transfer", AcceptTransfer(transferSvc))

	transfers := v1.Group("/transfers")
	transfers.Get("/", ListTransfers(transferSvc))
	transfers.Get("/:id/contents", GetTransferContents(transferSvc))
	transfers.Put("/:id/contents", UpdateTransferContents(transferSvc))
	transfers.Post("/:id/refresh", RefreshTransferAsset(transferSvc))
	transfers.Get("/:id", GetTransfer(transferSvc))
	transfers.Delete("/:id", DeleteTransfer(transferSvc))
}
