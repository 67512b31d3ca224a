package controller

import (
	"notely-be/internal/dto"
	"notely-be/internal/pkg/apperror"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEntryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Trash(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	PermanentDelete(ctx *fiber.Ctx) error
	Pin(ctx *fiber.Ctx) error
	Bookmark(ctx *fiber.Ctx) error
	Bookmarks(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	ByTag(ctx *fiber.Ctx) error
	PublicList(ctx *fiber.Ctx) error
	PublicShow(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	Activity(ctx *fiber.Ctx) error
	ActivityByEntry(ctx *fiber.Ctx) error
}

type entryController struct {
	entryService    service.IEntryService
	activityService service.IActivityService
}

func NewEntryController(entryService service.IEntryService, activityService service.IActivityService) IEntryController {
	return &entryController{
		entryService:    entryService,
		activityService: activityService,
	}
}

func (c *entryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/entries")

	// Public routes must sit above the auth middleware.
	h.Get("/public", c.PublicList)
	h.Get("/public/:id", c.PublicShow)

	h.Use(serverutils.JwtMiddleware)
	h.Get("/search", c.Search)
	h.Get("/bookmarks", c.Bookmarks)
	h.Get("/tags/:tag", c.ByTag)
	h.Get("/trash", c.Trash)
	h.Patch("/trash/:id/restore", c.Restore)
	h.Delete("/trash/:id", c.PermanentDelete)
	h.Get("/activity", c.Activity)
	h.Get("/activity/entry/:entryId", c.ActivityByEntry)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Patch("/:id/pin", c.Pin)
	h.Patch("/:id/bookmark", c.Bookmark)
	h.Post("/:id/summary", c.Summarize)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func parseIdParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.NotFound("Entry not found.")
	}
	return id, nil
}

func (c *entryController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	pinnedOnly := ctx.Query("pinned") == "true"

	res, err := c.entryService.List(ctx.Context(), userId, pinnedOnly)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list entries", res))
}

func (c *entryController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.entryService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show entry", res))
}

func (c *entryController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create entry", res))
}

func (c *entryController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.entryService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update entry", res))
}

func (c *entryController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.entryService.SoftDelete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Entry moved to trash", nil))
}

func (c *entryController) Trash(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.entryService.Trash(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list trash", res))
}

func (c *entryController) Restore(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.entryService.Restore(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Entry restored", res))
}

func (c *entryController) PermanentDelete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.entryService.PermanentDelete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Entry permanently deleted", nil))
}

func (c *entryController) Pin(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.PinEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.entryService.Pin(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success pin entry", res))
}

func (c *entryController) Bookmark(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.BookmarkEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.entryService.Bookmark(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success bookmark entry", res))
}

func (c *entryController) Bookmarks(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.entryService.ListBookmarked(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list bookmarks", res))
}

func (c *entryController) Search(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	query := ctx.Query("q")

	res, err := c.entryService.Search(ctx.Context(), userId, query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search entries", res))
}

func (c *entryController) ByTag(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	tag := ctx.Params("tag")

	res, err := c.entryService.ListByTag(ctx.Context(), userId, tag)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list entries by tag", res))
}

func (c *entryController) PublicList(ctx *fiber.Ctx) error {
	res, err := c.entryService.PublicList(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list public entries", res))
}

func (c *entryController) PublicShow(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.entryService.PublicShow(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show public entry", res))
}

func (c *entryController) Summarize(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.entryService.Summarize(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success summarize entry", res))
}

func (c *entryController) Activity(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.activityService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list activity", res))
}

func (c *entryController) ActivityByEntry(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	entryId, err := parseIdParam(ctx, "entryId")
	if err != nil {
		return err
	}

	res, err := c.activityService.ListByEntry(ctx.Context(), userId, entryId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list entry activity", res))
}
