package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printkart/storefront/internal/identity"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userView is what leaves the service: never the password, not even
// hashed.
type userView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func registerHandler(repo identity.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing name, email, or password"})
			return
		}
		u, err := repo.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if err == identity.ErrAlreadyExist {
				c.JSON(http.StatusConflict, gin.H{"error": "user with this email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully!",
			"user":    userView{ID: u.ID, Name: u.Name, Email: u.Email},
		})
	}
}

func loginHandler(sessions *identity.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		tok, err := sessions.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": tok})
	}
}

func listUsersHandler(repo identity.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out := make([]userView, 0, len(users))
		for _, u := range users {
			out = append(out, userView{ID: u.ID, Name: u.Name, Email: u.Email})
		}
		c.JSON(http.StatusOK, out)
	}
}
