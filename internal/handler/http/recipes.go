package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/go-chi/chi/v5"
)

// searchRecipes always answers 200; provider failures yield an empty list.
func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	recipes := h.services.RecipeService.Search(r.Context(), r.URL.Query().Get("s"))
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	_, _ = utils.WriteJSON(w, models.RecipeResponse{Meals: recipes}, http.StatusOK)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	email, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	recipes, err := h.services.FavoritesService.GetFavoriteRecipes(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	email, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.FavoritesService.AddToFavorites(r.Context(), email, recipe); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	email, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	if err := h.services.FavoritesService.RemoveFromFavorites(r.Context(), email, chi.URLParam(r, "idMeal")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) postComment(w http.ResponseWriter, r *http.Request) {
	email, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.services.FavoritesService.PostComment(r.Context(), email, chi.URLParam(r, "id"), req.Comment)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.FavoritesService.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, comments, http.StatusOK)
}
