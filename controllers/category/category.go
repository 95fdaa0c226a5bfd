package categoryController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	categoryValidator "lms/validators/category"

	"github.com/gofiber/fiber/v2"
)

// GetCategories lists root categories, or the children of ?parent_id=N
func GetCategories(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Category{})

	if c.Query("parent_id") != "" {
		db = db.Where("parent_id = ?", c.QueryInt("parent_id"))
	} else {
		db = db.Where("parent_id IS NULL")
	}

	var categories []models.Category
	if err := db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// GetAllCategories lists every category without hierarchy filtering
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// GetCategory returns one category together with its direct subcategories
func GetCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(int)

	var category models.Category
	if err := database.Database.Db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var children []models.Category
	database.Database.Db.Where("parent_id = ?", category.ID).Order("name asc").Find(&children)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", fiber.Map{
		"category":      category,
		"subcategories": children,
	})
}

// CreateCategory creates a new category. Admin only; slug must be unique.
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CreateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check slug uniqueness
	if err := db.Where("slug = ?", reqData.Slug).First(&models.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug already exists!", nil)
	}

	if reqData.ParentID != nil {
		var parent models.Category
		if err := db.Where("id = ?", *reqData.ParentID).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
		}
	}

	category := models.Category{
		Name:     reqData.Name,
		Slug:     reqData.Slug,
		ParentID: reqData.ParentID,
		IconURL:  reqData.IconURL,
	}

	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// UpdateCategory updates a category. Parent reassignment walks the ancestor
// chain and rejects any assignment that would create a cycle.
func UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryID").(int)

	reqData, ok := c.Locals("validatedCategoryUpdate").(*categoryValidator.UpdateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if reqData.Slug != nil && *reqData.Slug != category.Slug {
		if err := db.Where("slug = ?", *reqData.Slug).First(&models.Category{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug already exists!", nil)
		}
		category.Slug = *reqData.Slug
	}

	if reqData.ParentID != nil {
		if cycle, err := wouldCreateCycle(category.ID, *reqData.ParentID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
		} else if cycle {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Parent assignment would create a cycle!", nil)
		}
		category.ParentID = reqData.ParentID
	}

	if reqData.Name != nil {
		category.Name = *reqData.Name
	}
	if reqData.IconURL != nil {
		category.IconURL = *reqData.IconURL
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// wouldCreateCycle walks up from the proposed parent; reaching the category
// itself means the assignment would close a loop
func wouldCreateCycle(categoryID, parentID uint) (bool, error) {
	if categoryID == parentID {
		return true, nil
	}

	current := parentID
	for {
		var parent models.Category
		if err := database.Database.Db.Select("id", "parent_id").Where("id = ?", current).First(&parent).Error; err != nil {
			return false, err
		}
		if parent.ParentID == nil {
			return false, nil
		}
		if *parent.ParentID == categoryID {
			return true, nil
		}
		current = *parent.ParentID
	}
}
