package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"medpipeline/internal/adapter/http/handlers/mocks"
	"medpipeline/internal/domain/entities"
	"medpipeline/internal/usecase"
)

const validRecordJSON = `{
	"date": "2023-05-01",
	"drName": "Dr. Test",
	"hospitalName": "Test Hospital",
	"productName": "PHACO",
	"pipelineStage": "quoted",
	"potentialValue": 100000,
	"winningPercentage": 50,
	"buyingPercentage": 10,
	"forecastMonth": "2023-06"
}`

func TestPipelineHandler_ListRecords(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards query filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/records", h.ListRecords)

		want := usecase.Filter{Stage: "quoted", Hospital: "Apollo", Query: "scan"}
		uc.EXPECT().List(gomock.Any(), want).Return([]entities.Opportunity{{ID: 1}})

		req := httptest.NewRequest(http.MethodGet, "/v1/records?stage=quoted&hospital=Apollo&q=scan", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 record, got %d", len(out))
		}
	})

	t.Run("empty snapshot yields empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/records", h.ListRecords)

		uc.EXPECT().List(gomock.Any(), usecase.Filter{}).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("expected [], got %s", body)
		}
	})
}

func TestPipelineHandler_GetRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/records/:id", h.GetRecord)

		req := httptest.NewRequest(http.MethodGet, "/v1/records/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/records/:id", h.GetRecord)

		uc.EXPECT().Get(gomock.Any(), 99).Return(entities.Opportunity{}, usecase.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/records/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/records/:id", h.GetRecord)

		uc.EXPECT().Get(gomock.Any(), 5).Return(entities.Opportunity{ID: 5, DrName: "Dr. X"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/records/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if out["drName"] != "Dr. X" {
			t.Fatalf("unexpected body: %v", out)
		}
	})
}

func TestPipelineHandler_CreateRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/records", h.CreateRecord)

		req := httptest.NewRequest(http.MethodPost, "/v1/records", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/records", h.CreateRecord)

		req := httptest.NewRequest(http.MethodPost, "/v1/records", bytes.NewBufferString(`{"drName": "Dr. X"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected write maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/records", h.CreateRecord)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Opportunity{}, usecase.ErrStoreRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/records", bytes.NewBufferString(validRecordJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/records", h.CreateRecord)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Opportunity{})).DoAndReturn(
			func(_ context.Context, o entities.Opportunity) (entities.Opportunity, error) {
				if o.DrName != "Dr. Test" || o.PipelineStage != entities.StageQuoted {
					t.Fatalf("unexpected entity: %+v", o)
				}
				o.ID = 10
				return o, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/records", bytes.NewBufferString(validRecordJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if out["id"].(float64) != 10 {
			t.Fatalf("unexpected id: %v", out["id"])
		}
	})
}

func TestPipelineHandler_UpdateRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.PATCH("/v1/records/:id", h.UpdateRecord)

		uc.EXPECT().Update(gomock.Any(), 99, gomock.Any()).Return(entities.Opportunity{}, usecase.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/records/99", bytes.NewBufferString(validRecordJSON))
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
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.PATCH("/v1/records/:id", h.UpdateRecord)

		uc.EXPECT().Update(gomock.Any(), 5, gomock.Any()).Return(entities.Opportunity{ID: 5}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/records/5", bytes.NewBufferString(validRecordJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_DeleteRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.DELETE("/v1/records/:id", h.DeleteRecord)

		uc.EXPECT().Delete(gomock.Any(), 5).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/records/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.DELETE("/v1/records/:id", h.DeleteRecord)

		uc.EXPECT().Delete(gomock.Any(), 99).Return(usecase.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/records/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_RefreshRecords(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success reports the record count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/records/refresh", h.RefreshRecords)

		uc.EXPECT().Refresh(gomock.Any()).Return(nil)
		uc.EXPECT().Snapshot().Return([]entities.Opportunity{{ID: 1}, {ID: 2}})

		req := httptest.NewRequest(http.MethodPost, "/v1/records/refresh", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if out["records"].(float64) != 2 {
			t.Fatalf("unexpected count: %v", out["records"])
		}
	})

	t.Run("store down maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/records/refresh", h.RefreshRecords)

		uc.EXPECT().Refresh(gomock.Any()).Return(usecase.ErrStoreUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/records/refresh", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_ExportRecords(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPipelineUseCase(ctrl)
	h := NewPipelineHandler(uc)

	r := gin.New()
	r.GET("/v1/records/export", h.ExportRecords)

	uc.EXPECT().Snapshot().Return([]entities.Opportunity{
		{ID: 1, DrName: "Dr. X", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/records/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatal("expected workbook bytes")
	}
}
