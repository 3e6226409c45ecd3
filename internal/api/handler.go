package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Alp4ka/pagenav"
	"github.com/Alp4ka/pagenav/internal/catalog"
	"github.com/Alp4ka/pagenav/internal/config"
)

// ProductLister is the catalog dependency of the handler.
type ProductLister interface {
	List(ctx context.Context, filter catalog.ListFilter, pager *pagenav.PagePager) (*pagenav.PageResult[catalog.Product], error)
}

// ProductsResponse is the body of GET /products.
type ProductsResponse struct {
	Items           []catalog.Product    `json:"items"`
	Pager           pagenav.PagerState   `json:"pager"`
	Pages           []pagenav.PageMarker `json:"pages"`
	Summary         string               `json:"summary"`
	HasPrevious     bool                 `json:"hasPrevious"`
	HasNext         bool                 `json:"hasNext"`
	PageSizeOptions []int                `json:"pageSizeOptions"`
}

// PagesResponse is the body of GET /pages.
type PagesResponse struct {
	Pages []pagenav.PageMarker `json:"pages"`
	Text  string               `json:"text"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Handler serves the catalog API.
type Handler struct {
	products ProductLister
	pageSize config.PageSizeConfig
	log      *logrus.Entry
	mux      *http.ServeMux
}

func NewHandler(products ProductLister, pageSize config.PageSizeConfig, log *logrus.Entry) *Handler {
	h := &Handler{
		products: products,
		pageSize: pageSize,
		log:      log,
		mux:      http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /products", h.listProducts)
	h.mux.HandleFunc("GET /pages", h.visiblePages)

	return h
}

// ServeHTTP - implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := intParam(query, "page")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pageSize, err := intParam(query, "pageSize")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	options := h.pageSize.SelectorOptions()
	if len(options) > 0 {
		pageSize = options.Normalize(pageSize, h.pageSize.Default)
	} else if pageSize <= 0 {
		pageSize = h.pageSize.Default
	}

	raw := pagenav.RawPagePager{
		Page:     page,
		PageSize: pageSize,
		Sort:     pagenav.SplitSort(query.Get("sort")),
	}

	pager, err := raw.Decode(catalog.SortColumns, catalog.DefaultSort...)
	if err != nil {
		h.sendError(w, "Invalid pagination parameters: "+err.Error(), http.StatusBadRequest)
		return
	}
	pager = pager.WithMaxPageSize(h.pageSize.Max).WithPageSize(pageSize)

	res, err := h.products.List(r.Context(), catalog.ListFilter{Category: query.Get("category")}, pager)
	if err != nil {
		h.log.WithError(err).Error("Failed to list products")
		h.sendError(w, "Failed to list products", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, http.StatusOK, ProductsResponse{
		Items:           res.Items,
		Pager:           res.State,
		Pages:           res.Pages,
		Summary:         res.State.Summary(),
		HasPrevious:     res.State.HasPrevious(),
		HasNext:         res.State.HasNext(),
		PageSizeOptions: options,
	})
}

func (h *Handler) visiblePages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := intParam(query, "page")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	total, err := intParam(query, "total")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page = pagenav.ClampPage(page, total)
	markers := pagenav.GenerateVisiblePages(page, total)

	h.sendJSON(w, http.StatusOK, PagesResponse{
		Pages: markers,
		Text:  pagenav.Render(markers, page),
	})
}

func intParam(query url.Values, name string) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid '%s' parameter '%s'", name, raw)
	}

	return value, nil
}

func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.WithError(err).Warn("Failed to write response")
	}
}

func (h *Handler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
