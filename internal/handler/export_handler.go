package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/fas_dashboard/internal/service"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// ExportHandler serves workbook downloads and archives.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportProducts downloads every product as an xlsx workbook.
func (h *ExportHandler) ExportProducts(c *gin.Context) {
	data, _, err := h.exportService.ProductsWorkbook(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to export products")
		return
	}
	attachment(c, service.ExportFileName(time.Now()), data)
}

// DownloadTemplate downloads the empty product import workbook.
func (h *ExportHandler) DownloadTemplate(c *gin.Context) {
	data, err := h.exportService.ProductTemplate()
	if err != nil {
		writeError(c, err, "Failed to build template")
		return
	}
	attachment(c, "product-template.xlsx", data)
}

// ArchiveProducts uploads the current product workbook to object storage.
func (h *ExportHandler) ArchiveProducts(c *gin.Context) {
	res, err := h.exportService.Archive(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to archive products")
		return
	}
	utils.Success(c, 201, "Products archived successfully", res)
}

func attachment(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(200, service.XLSXMediaType, data)
}
