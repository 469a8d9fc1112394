package controller

import (
	"notebook-dashboard-be/internal/dto"
	"notebook-dashboard-be/internal/pkg/serverutils"
	"notebook-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	ShowLogin(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	ShowRegister(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/login", c.ShowLogin)
	r.Post("/login", c.Login)
	r.Get("/register", c.ShowRegister)
	r.Post("/register", c.Register)
	r.Get("/logout", serverutils.RequireAuth(), c.Logout)
}

func (c *authController) ShowLogin(ctx *fiber.Ctx) error {
	if _, ok := serverutils.CurrentUserID(ctx); ok {
		return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	data := fiber.Map{"Title": "Login"}
	if ctx.Query("registered") != "" {
		data["Message"] = "Registration successful! Please log in."
	}
	return ctx.Render("login", data, "layouts/main")
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	if _, ok := serverutils.CurrentUserID(ctx); ok {
		return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return c.renderLoginError(ctx, "Invalid username or password")
	}

	sess, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if serverutils.IsCode(err, serverutils.ErrCodeInvalidCredentials) {
			return c.renderLoginError(ctx, "Invalid username or password")
		}
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    sess.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (c *authController) renderLoginError(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
		"Title": "Login",
		"Error": msg,
	}, "layouts/main")
}

func (c *authController) ShowRegister(ctx *fiber.Ctx) error {
	if _, ok := serverutils.CurrentUserID(ctx); ok {
		return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return ctx.Render("register", fiber.Map{"Title": "Register"}, "layouts/main")
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	if _, ok := serverutils.CurrentUserID(ctx); ok {
		return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return c.renderRegisterError(ctx, fiber.StatusBadRequest, err.Error(), &req)
	}

	if _, err := c.service.Register(ctx.Context(), &req); err != nil {
		code, ok := serverutils.CodeOf(err)
		if ok && (code == serverutils.ErrCodeDuplicateUsername || code == serverutils.ErrCodeDuplicateEmail) {
			return c.renderRegisterError(ctx, fiber.StatusConflict, err.Error(), &req)
		}
		return err
	}

	return ctx.Redirect("/login?registered=1", fiber.StatusSeeOther)
}

func (c *authController) renderRegisterError(ctx *fiber.Ctx, status int, msg string, req *dto.RegisterRequest) error {
	return ctx.Status(status).Render("register", fiber.Map{
		"Title":    "Register",
		"Error":    msg,
		"Username": req.Username,
		"Email":    req.Email,
	}, "layouts/main")
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if sess, ok := serverutils.CurrentSession(ctx); ok {
		c.service.Logout(sess.Token)
	}
	ctx.ClearCookie(serverutils.SessionCookieName)
	return ctx.Redirect("/", fiber.StatusSeeOther)
}
