package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-service/internal/app/account/queries/get_user"
	"github.com/light-bringer/storefront-service/internal/app/account/queries/get_wishlist"
	"github.com/light-bringer/storefront-service/internal/app/account/queries/list_users"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/add_to_wishlist"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/authenticate_user"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/delete_user"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/register_user"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/remove_from_wishlist"
	"github.com/light-bringer/storefront-service/internal/app/account/usecases/update_user_role"
)

// UserHandler serves the account and auth endpoints.
type UserHandler struct {
	registerUser       *register_user.Interactor
	authenticateUser   *authenticate_user.Interactor
	getUser            *get_user.Query
	listUsers          *list_users.Query
	updateUserRole     *update_user_role.Interactor
	deleteUser         *delete_user.Interactor
	getWishlist        *get_wishlist.Query
	addToWishlist      *add_to_wishlist.Interactor
	removeFromWishlist *remove_from_wishlist.Interactor
}

// NewUserHandler creates a new user handler.
func NewUserHandler(
	registerUser *register_user.Interactor,
	authenticateUser *authenticate_user.Interactor,
	getUser *get_user.Query,
	listUsers *list_users.Query,
	updateUserRole *update_user_role.Interactor,
	deleteUser *delete_user.Interactor,
	getWishlist *get_wishlist.Query,
	addToWishlist *add_to_wishlist.Interactor,
	removeFromWishlist *remove_from_wishlist.Interactor,
) *UserHandler {
	return &UserHandler{
		registerUser:       registerUser,
		authenticateUser:   authenticateUser,
		getUser:            getUser,
		listUsers:          listUsers,
		updateUserRole:     updateUserRole,
		deleteUser:         deleteUser,
		getWishlist:        getWishlist,
		addToWishlist:      addToWishlist,
		removeFromWishlist: removeFromWishlist,
	}
}

type registerBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Image    string `json:"image"`
}

// Register serves POST /api/register.
func (h *UserHandler) Register(c *gin.Context) {
	var body registerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	result, err := h.registerUser.Execute(c.Request.Context(), &register_user.Request{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Image:    body.Image,
	})
	if err != nil {
		respondError(c, "register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": result.UserID})
}

type loginBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login serves POST /api/login.
func (h *UserHandler) Login(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	result, err := h.authenticateUser.Execute(c.Request.Context(), &authenticate_user.Request{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		respondError(c, "log in", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":   result.Principal.UserID,
			"role": string(result.Principal.Role),
		},
	})
}

// Profile serves GET /api/user/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.getUser.Execute(c.Request.Context(), &get_user.Request{
		Principal: currentPrincipal(c),
	})
	if err != nil {
		respondError(c, "get profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AdminGet serves GET /api/admin/users/:id.
func (h *UserHandler) AdminGet(c *gin.Context) {
	profile, err := h.getUser.Execute(c.Request.Context(), &get_user.Request{
		Principal: currentPrincipal(c),
		UserID:    c.Param("id"),
	})
	if err != nil {
		respondError(c, "get user", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AdminList serves GET /api/admin/users.
func (h *UserHandler) AdminList(c *gin.Context) {
	result, err := h.listUsers.Execute(c.Request.Context(), &list_users.Request{
		Principal: currentPrincipal(c),
		Page:      queryInt64(c, "page", 1),
		PageSize:  queryInt64(c, "pageSize", 0),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	})
	if err != nil {
		respondError(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       result.Users,
		"totalCount":  result.TotalCount,
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

type updateRoleBody struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole serves PATCH /api/admin/users/:id/role.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var body updateRoleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	result, err := h.updateUserRole.Execute(c.Request.Context(), &update_user_role.Request{
		Principal: currentPrincipal(c),
		UserID:    c.Param("id"),
		Role:      body.Role,
	})
	if err != nil {
		respondError(c, "update user role", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   result.UserID,
		"role": string(result.Role),
	})
}

// Delete serves DELETE /api/admin/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	err := h.deleteUser.Execute(c.Request.Context(), &delete_user.Request{
		Principal: currentPrincipal(c),
		UserID:    c.Param("id"),
	})
	if err != nil {
		respondError(c, "delete user", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Wishlist serves GET /api/wishlist.
func (h *UserHandler) Wishlist(c *gin.Context) {
	items, err := h.getWishlist.Execute(c.Request.Context(), &get_wishlist.Request{
		Principal: currentPrincipal(c),
	})
	if err != nil {
		respondError(c, "get wishlist", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type wishlistBody struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddWishlist serves POST /api/wishlist.
func (h *UserHandler) AddWishlist(c *gin.Context) {
	var body wishlistBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err := h.addToWishlist.Execute(c.Request.Context(), &add_to_wishlist.Request{
		Principal: currentPrincipal(c),
		ProductID: body.ProductID,
	})
	if err != nil {
		respondError(c, "add to wishlist", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveWishlist serves DELETE /api/wishlist/:productId.
func (h *UserHandler) RemoveWishlist(c *gin.Context) {
	err := h.removeFromWishlist.Execute(c.Request.Context(), &remove_from_wishlist.Request{
		Principal: currentPrincipal(c),
		ProductID: c.Param("productId"),
	})
	if err != nil {
		respondError(c, "remove from wishlist", err)
		return
	}

	c.Status(http.StatusNoContent)
}
