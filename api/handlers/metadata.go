// ABOUTME: Metadata handlers for submitting, listing and reading page-metadata records
// ABOUTME: Also exposes page extraction used to prefill the submission form

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"searchpilot-api/api/dto/mappers"
	"searchpilot-api/api/dto/requests"
	"searchpilot-api/api/dto/responses"
	"searchpilot-api/core/domain"
	"searchpilot-api/core/interfaces"
)

// MetadataService defines the methods needed from the metadata service
type MetadataService interface {
	Submit(ctx context.Context, in domain.MetadataInput) (*domain.Metadata, error)
	List(ctx context.Context) ([]domain.Metadata, error)
	Get(ctx context.Context, id string) (*domain.Metadata, error)
}

// MetadataHandler handles record submission and lookup
type MetadataHandler struct {
	service   MetadataService
	extractor interfaces.PageMetadataService
}

// NewMetadataHandler creates a new metadata handler. extractor may be nil,
// in which case the extraction route is not registered.
func NewMetadataHandler(service MetadataService, extractor interfaces.PageMetadataService) *MetadataHandler {
	return &MetadataHandler{
		service:   service,
		extractor: extractor,
	}
}

// RegisterRoutes registers metadata routes
func (h *MetadataHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "submitMetadata",
		Method:        http.MethodPost,
		Path:          "/submit-metadata",
		Summary:       "Submit page metadata",
		Description:   "Stores a page-metadata record. Title, description and an http(s) URL are required; keywords are a comma-separated list.",
		Tags:          []string{"Metadata"},
		DefaultStatus: http.StatusCreated,
	}, h.SubmitMetadata)

	huma.Register(api, huma.Operation{
		OperationID: "listMetadata",
		Method:      http.MethodGet,
		Path:        "/metadata",
		Summary:     "List submitted metadata",
		Description: "Returns every stored record, newest first",
		Tags:        []string{"Metadata"},
	}, h.ListMetadata)

	huma.Register(api, huma.Operation{
		OperationID: "getMetadata",
		Method:      http.MethodGet,
		Path:        "/metadata/{id}",
		Summary:     "Get one metadata record",
		Tags:        []string{"Metadata"},
	}, h.GetMetadata)

	if h.extractor != nil {
		huma.Register(api, huma.Operation{
			OperationID: "extractMetadata",
			Method:      http.MethodPost,
			Path:        "/metadata/extract",
			Summary:     "Extract metadata from a web page",
			Description: "Fetches the page and reads its title, description and keywords from Open Graph and meta tags",
			Tags:        []string{"Metadata"},
		}, h.ExtractMetadata)
	}
}

// SubmitMetadataInput defines the input for the SubmitMetadata operation
type SubmitMetadataInput struct {
	Body requests.SubmitMetadataRequest
}

// SubmitMetadataOutput defines the output for the SubmitMetadata operation
type SubmitMetadataOutput struct {
	Body responses.SubmitMetadataResponse
}

// SubmitMetadata handles POST /submit-metadata
func (h *MetadataHandler) SubmitMetadata(ctx context.Context, input *SubmitMetadataInput) (*SubmitMetadataOutput, error) {
	record, err := h.service.Submit(ctx, mappers.ToMetadataInput(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SubmitMetadataOutput{
		Body: responses.SubmitMetadataResponse{
			Message: "Metadata submitted successfully",
			ID:      record.ID,
		},
	}, nil
}

// ListMetadataOutput defines the output for the ListMetadata operation
type ListMetadataOutput struct {
	Body []responses.MetadataResponse
}

// ListMetadata handles GET /metadata
func (h *MetadataHandler) ListMetadata(ctx context.Context, _ *struct{}) (*ListMetadataOutput, error) {
	records, err := h.service.List(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListMetadataOutput{Body: mappers.ToMetadataResponses(records)}, nil
}

// GetMetadataInput defines the input for the GetMetadata operation
type GetMetadataInput struct {
	ID string `path:"id" doc:"Record identifier"`
}

// GetMetadataOutput defines the output for the GetMetadata operation
type GetMetadataOutput struct {
	Body *responses.MetadataResponse
}

// GetMetadata handles GET /metadata/{id}
func (h *MetadataHandler) GetMetadata(ctx context.Context, input *GetMetadataInput) (*GetMetadataOutput, error) {
	record, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetMetadataOutput{Body: mappers.ToMetadataResponse(record)}, nil
}

// ExtractMetadataInput defines the input for the ExtractMetadata operation
type ExtractMetadataInput struct {
	Body requests.ExtractMetadataRequest
}

// ExtractMetadataOutput defines the output for the ExtractMetadata operation
type ExtractMetadataOutput struct {
	Body *responses.ExtractMetadataResponse
}

// ExtractMetadata handles POST /metadata/extract
func (h *MetadataHandler) ExtractMetadata(ctx context.Context, input *ExtractMetadataInput) (*ExtractMetadataOutput, error) {
	meta, err := h.extractor.Extract(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExtractMetadataOutput{Body: mappers.ToExtractResponse(meta)}, nil
}
