package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"diamond_exteriors/internal/adapter/http/handlers/mocks"
	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func estimatorRouter(h *EstimatorHandler) *gin.Engine {
	r := gin.New()
	sessions := r.Group("/v1/estimator/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/contact", h.SubmitContact)
		sessions.POST("/:id/project-type", h.SelectProjectType)
		sessions.POST("/:id/dimensions", h.SetDimensions)
		sessions.POST("/:id/material", h.SelectMaterial)
		sessions.POST("/:id/next", h.AdvanceToMaterials)
		sessions.POST("/:id/back", h.StepBack)
		sessions.POST("/:id/reset", h.ResetSession)
		sessions.GET("/:id/summary", h.GetSummary)
	}
	return r
}

func TestEstimatorHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	r := estimatorRouter(NewEstimatorHandler(uc))

	uc.EXPECT().CreateSession().Return(entities.EstimatorSession{
		ID:     "sess-1",
		Step:   entities.StepContactInfo,
		Width:  entities.DefaultWidth,
		Length: entities.DefaultLength,
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["id"] != "sess-1" || body["step"] != "contact_info" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestEstimatorHandler_SubmitContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := estimatorRouter(NewEstimatorHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions/sess-1/contact", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := estimatorRouter(NewEstimatorHandler(uc))

		uc.EXPECT().SubmitContact("sess-1", gomock.Any()).Return(entities.EstimatorSession{}, usecase.ErrContactRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions/sess-1/contact", bytes.NewBufferString(`{"name":"","city":"Austin","phone":"555"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown session maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := estimatorRouter(NewEstimatorHandler(uc))

		uc.EXPECT().SubmitContact("missing", gomock.Any()).Return(entities.EstimatorSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions/missing/contact", bytes.NewBufferString(`{"name":"Jane","city":"Austin","phone":"555"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := estimatorRouter(NewEstimatorHandler(uc))

		uc.EXPECT().SubmitContact("sess-1", entities.ContactInfo{Name: "Jane", City: "Austin", Phone: "555"}).
			Return(entities.EstimatorSession{ID: "sess-1", Step: entities.StepProjectTypeSelect}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions/sess-1/contact", bytes.NewBufferString(`{"name":"Jane","city":"Austin","phone":"555"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimatorHandler_SelectMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown material maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := estimatorRouter(NewEstimatorHandler(uc))

		uc.EXPECT().SelectMaterial("sess-1", "granite").Return(entities.EstimatorSession{}, usecase.ErrUnknownMaterial)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions/sess-1/material", bytes.NewBufferString(`{"material_id":"granite"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := estimatorRouter(NewEstimatorHandler(uc))

		uc.EXPECT().SelectMaterial("sess-1", "wood").Return(entities.EstimatorSession{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions/sess-1/material", bytes.NewBufferString(`{"material_id":"wood"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success includes cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimatorUseCase(ctrl)
		r := estimatorRouter(NewEstimatorHandler(uc))

		cost := 14256.0
		uc.EXPECT().SelectMaterial("sess-1", "composite").Return(entities.EstimatorSession{
			ID:            "sess-1",
			Step:          entities.StepResult,
			EstimatedCost: &cost,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimator/sessions/sess-1/material", bytes.NewBufferString(`{"material_id":"composite"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["estimated_cost"] != 14256.0 {
			t.Fatalf("unexpected cost: %v", body["estimated_cost"])
		}
	})
}

func TestEstimatorHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	r := estimatorRouter(NewEstimatorHandler(uc))

	uc.EXPECT().Summary("sess-1", "es").Return(entities.QuoteSummary{
		Name:          "Jane Doe",
		FormattedCost: "14,256.00",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimator/sessions/sess-1/summary?lang=es", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["formatted_cost"] != "14,256.00" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestMapEstimatorError(t *testing.T) {
	if got := mapEstimatorError(usecase.ErrSessionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", got.HTTPStatus)
	}
	if got := mapEstimatorError(usecase.ErrContactRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", got.HTTPStatus)
	}
	if got := mapEstimatorError(usecase.ErrUnknownProjectType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", got.HTTPStatus)
	}
	if got := mapEstimatorError(usecase.ErrUnknownMaterial); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", got.HTTPStatus)
	}
	if got := mapEstimatorError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 got %d", got.HTTPStatus)
	}
	if got := mapEstimatorError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", got.HTTPStatus)
	}
}
