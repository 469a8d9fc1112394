package controller

import (
	"html/template"
	"strconv"

	"notebook-dashboard-be/internal/dto"
	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/pkg/serverutils"
	"notebook-dashboard-be/internal/service"
	"notebook-dashboard-be/pkg/ipynb"
	"notebook-dashboard-be/pkg/markdown"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
	ShowUpload(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type notebookController struct {
	catalog service.ICatalogService
	uploads service.IUploadService
}

func NewNotebookController(catalog service.ICatalogService, uploads service.IUploadService) INotebookController {
	return &notebookController{
		catalog: catalog,
		uploads: uploads,
	}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Get("/dashboard", serverutils.RequireAuth(), c.Dashboard)
	r.Get("/upload", serverutils.RequireAuth(), c.ShowUpload)
	r.Post("/upload", serverutils.RequireAuth(), c.Upload)
	r.Get("/notebook/:id", c.Show)
	r.Get("/search", c.Search)
}

// viewData decorates per-page template data with the session identity for
// the shared navigation.
func viewData(ctx *fiber.Ctx, data fiber.Map) fiber.Map {
	data["Username"] = serverutils.CurrentUsername(ctx)
	return data
}

func (c *notebookController) Index(ctx *fiber.Ctx) error {
	notebooks, err := c.catalog.ListPublic(ctx.Context(), 12)
	if err != nil {
		return err
	}
	return ctx.Render("index", viewData(ctx, fiber.Map{
		"Title":     "Notebook Dashboard",
		"Notebooks": notebooks,
	}), "layouts/main")
}

func (c *notebookController) Dashboard(ctx *fiber.Ctx) error {
	userID, _ := serverutils.CurrentUserID(ctx)

	notebooks, err := c.catalog.ListOwned(ctx.Context(), userID)
	if err != nil {
		return err
	}
	return ctx.Render("dashboard", viewData(ctx, fiber.Map{
		"Title":     "My Notebooks",
		"Notebooks": notebooks,
	}), "layouts/main")
}

func (c *notebookController) ShowUpload(ctx *fiber.Ctx) error {
	return ctx.Render("upload", viewData(ctx, fiber.Map{
		"Title": "Upload Notebook",
	}), "layouts/main")
}

func (c *notebookController) Upload(ctx *fiber.Ctx) error {
	userID, _ := serverutils.CurrentUserID(ctx)

	fileHeader, err := ctx.FormFile("notebook")
	if err != nil || fileHeader.Filename == "" {
		return c.renderUploadError(ctx, fiber.StatusBadRequest, "No file selected")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	req := &dto.UploadRequest{
		Tags:     ctx.FormValue("tags"),
		IsPublic: ctx.FormValue("is_public") == "on",
	}

	if _, err := c.uploads.Upload(ctx.Context(), userID, fileHeader.Filename, file, req); err != nil {
		if code, ok := serverutils.CodeOf(err); ok {
			return c.renderUploadError(ctx, serverutils.StatusCode(code), err.Error())
		}
		return err
	}

	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (c *notebookController) renderUploadError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).Render("upload", viewData(ctx, fiber.Map{
		"Title": "Upload Notebook",
		"Error": msg,
	}), "layouts/main")
}

// CellView is a display-ready notebook cell.
type CellView struct {
	Kind   string
	HTML   template.HTML // markdown cells only
	Source string        // code and raw cells
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return serverutils.NewAppError(serverutils.ErrCodeNotFound, "Notebook not found")
	}

	var requester *uint
	if userID, ok := serverutils.CurrentUserID(ctx); ok {
		requester = &userID
	}

	notebook, err := c.catalog.Get(ctx.Context(), uint(id), requester)
	if err != nil {
		return err
	}

	author, err := c.catalog.OwnerUsername(ctx.Context(), notebook)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"Title":    notebook.Title,
		"Notebook": notebook,
		"Author":   author,
	}

	// Externally hosted notebooks have no stored file to render.
	if notebook.FilePath != "" {
		cells, parseErr := c.renderCells(notebook)
		if parseErr != nil {
			data["ParseError"] = "Error reading notebook: " + parseErr.Error()
		} else {
			data["Cells"] = cells
		}
	}

	return ctx.Render("notebook", viewData(ctx, data), "layouts/main")
}

func (c *notebookController) renderCells(notebook *entity.Notebook) ([]CellView, error) {
	nb, err := ipynb.ParseFile(notebook.FilePath)
	if err != nil {
		return nil, err
	}
	return buildCellViews(nb, markdown.ToHTML), nil
}

// buildCellViews converts parsed cells into display form. A markdown cell
// whose conversion fails degrades to its raw source, shown the way code
// cells are.
func buildCellViews(nb *ipynb.Notebook, toHTML func(string) (string, error)) []CellView {
	cells := make([]CellView, 0, len(nb.Cells))
	for _, cell := range nb.Cells {
		view := CellView{Kind: cell.CellType, Source: cell.Source.String()}
		if cell.CellType == ipynb.CellTypeMarkdown {
			if html, err := toHTML(cell.Source.String()); err == nil {
				view.HTML = template.HTML(html)
			} else {
				view.Kind = ipynb.CellTypeRaw
			}
		}
		cells = append(cells, view)
	}
	return cells
}

func (c *notebookController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	tag := ctx.Query("tag")

	notebooks, err := c.catalog.Search(ctx.Context(), query, tag)
	if err != nil {
		return err
	}
	return ctx.Render("search", viewData(ctx, fiber.Map{
		"Title":     "Search",
		"Query":     query,
		"Tag":       tag,
		"Notebooks": notebooks,
	}), "layouts/main")
}
