package controller

import (
	"notely-be/internal/dto"
	"notely-be/internal/pkg/apperror"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Current(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	UploadAvatar(ctx *fiber.Ctx) error
	UpdateAvatarURL(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{userService: userService}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/current", c.Current)
	h.Patch("", c.Update)
	h.Patch("/avatar", c.UploadAvatar)
	h.Patch("/avatar-url", c.UpdateAvatarURL)
	h.Patch("/deactivate", c.Deactivate)
}

func (c *userController) Current(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated successfully.", res))
}

func (c *userController) UploadAvatar(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	file, err := ctx.FormFile("avatar")
	if err != nil {
		return apperror.Validation("Missing avatar file.")
	}

	res, err := c.userService.UploadAvatar(ctx.Context(), userId, file)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Avatar updated successfully.", res))
}

func (c *userController) UpdateAvatarURL(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpdateAvatarURLRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateAvatarURL(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Avatar updated successfully.", res))
}

func (c *userController) Deactivate(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	if err := c.userService.Deactivate(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account deactivated successfully.", nil))
}
