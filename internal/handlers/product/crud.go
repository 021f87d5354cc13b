package product

import (
	"net/http"
	"strings"

	"sifted_back_end/internal/models"
	"sifted_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

type productInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

func (in productInput) validate() string {
	if strings.TrimSpace(in.Name) == "" {
		return "Nama product wajib diisi"
	}
	if in.Price < 0 {
		return "Harga tidak boleh negatif"
	}
	if !models.ValidCategory(in.Category) {
		return "Kategori tidak dikenal"
	}
	return ""
}

// Create handles POST /api/products (admin only).
func (h *Handler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Data tidak valid"})
		return
	}
	if msg := in.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	p := models.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	}

	ctx := c.Request.Context()
	if err := h.repo.Create(ctx, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal menyimpan product"})
		return
	}

	go services.IndexProduct(p)
	invalidateCache(ctx)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": p})
}

// Update handles PUT /api/products (admin only). The dashboard sends the id
// in the body, not the path.
func (h *Handler) Update(c *gin.Context) {
	var in struct {
		ID string `json:"id"`
		productInput
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Data tidak valid"})
		return
	}

	id, err := gocql.ParseUUID(in.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID product tidak valid"})
		return
	}
	if msg := in.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.repo.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product tidak ditemukan"})
		return
	}

	existing.Name = in.Name
	existing.Price = in.Price
	existing.Description = in.Description
	existing.Category = in.Category
	existing.ImageURL = in.ImageURL

	if err := h.repo.Update(ctx, existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal mengupdate product"})
		return
	}

	go services.IndexProduct(existing)
	invalidateCache(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": existing})
}

// Delete handles DELETE /api/products?id= (admin only).
func (h *Handler) Delete(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID product tidak valid"})
		return
	}

	ctx := c.Request.Context()
	if err := h.repo.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal menghapus product"})
		return
	}

	go services.DeleteProductIndex(id.String())
	invalidateCache(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadImage handles POST /api/products/:id/image (admin only): stores the
// file in MinIO and records the object path on the product.
func (h *Handler) UploadImage(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID product tidak valid"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File gambar wajib diunggah"})
		return
	}

	ctx := c.Request.Context()
	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product tidak ditemukan"})
		return
	}

	objectPath, err := services.UploadProductImage(ctx, id.String(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal mengunggah gambar"})
		return
	}

	p.ImageURL = objectPath
	if err := h.repo.Update(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal menyimpan product"})
		return
	}

	go services.IndexProduct(p)
	invalidateCache(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}
