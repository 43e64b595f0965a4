package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printkart/storefront/internal/content"
	"github.com/printkart/storefront/internal/identity"
	"github.com/printkart/storefront/internal/newsletter"
)

// getContentHandler serves the public lookup: with ?slug= it returns a
// single section, without it the full list.
func getContentHandler(repo content.SectionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if slug := c.Query("slug"); slug != "" {
			s, err := repo.GetBySlug(c.Request.Context(), slug)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
				return
			}
			c.JSON(http.StatusOK, s)
			return
		}
		listContentHandler(repo)(c)
	}
}

func listContentHandler(repo content.SectionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sections, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if sections == nil {
			sections = []content.Section{}
		}
		c.JSON(http.StatusOK, sections)
	}
}

func createContentHandler(repo content.SectionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s content.Section
		if err := c.ShouldBindJSON(&s); err != nil || s.Title == "" || s.Slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and slug are required"})
			return
		}
		s.ID = 0
		if err := repo.Create(c.Request.Context(), &s); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

func updateContentHandler(repo content.SectionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s content.Section
		if err := c.ShouldBindJSON(&s); err != nil || s.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}
		got, err := repo.Update(c.Request.Context(), &s)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		c.JSON(http.StatusOK, got)
	}
}

func deleteContentHandler(repo content.SectionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID int64 `json:"id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), req.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listFAQsHandler(repo content.FAQRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		faqs, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if faqs == nil {
			faqs = []content.FAQ{}
		}
		c.JSON(http.StatusOK, faqs)
	}
}

func createFAQHandler(repo content.FAQRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f content.FAQ
		if err := c.ShouldBindJSON(&f); err != nil || f.Question == "" || f.Answer == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer are required"})
			return
		}
		f.ID = 0
		if err := repo.Create(c.Request.Context(), &f); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, f)
	}
}

func updateFAQHandler(repo content.FAQRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f content.FAQ
		if err := c.ShouldBindJSON(&f); err != nil || f.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}
		got, err := repo.Update(c.Request.Context(), &f)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "faq not found"})
			return
		}
		c.JSON(http.StatusOK, got)
	}
}

func deleteFAQHandler(repo content.FAQRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID int64 `json:"id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), req.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "faq not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func subscribeHandler(repo newsletter.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		if _, err := repo.Subscribe(c.Request.Context(), req.Email); err != nil {
			if errors.Is(err, newsletter.ErrEmailRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully!"})
	}
}

func listSubscribersHandler(repo newsletter.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if subs == nil {
			subs = []newsletter.Subscriber{}
		}
		c.JSON(http.StatusOK, subs)
	}
}

func deleteSubscriberHandler(repo newsletter.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID int64 `json:"id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), req.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "subscriber not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createGuestHandler(repo *identity.GuestRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
			return
		}
		g, err := repo.Create(c.Request.Context(), req.Name, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, g)
	}
}

func listGuestsHandler(repo *identity.GuestRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		guests, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if guests == nil {
			guests = []identity.GuestUser{}
		}
		c.JSON(http.StatusOK, guests)
	}
}

func deleteGuestHandler(repo *identity.GuestRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID int64 `json:"id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), req.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest user not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
