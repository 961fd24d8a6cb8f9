package presenters

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	utils_errors "margin-system/utils/errors"
	"margin-system/utils/logger"
)

func TestHandler_respondDomainError(t *testing.T) {
	log, _ := logger.NewLogger("DEV")
	h := NewHandler(nil, log)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"merchant not found", utils_errors.ErrMerchantNotFound, http.StatusNotFound},
		{"record not found", utils_errors.ErrRecordNotFound, http.StatusNotFound},
		{"precondition failure", utils_errors.ErrNoRefundableDeposit, http.StatusUnprocessableEntity},
		{"duplicate application", utils_errors.ErrDuplicateApplication, http.StatusUnprocessableEntity},
		{"already audited", utils_errors.ErrAlreadyAudited, http.StatusConflict},
		{"refund exceeds capture", utils_errors.ErrRefundExceedsCapture, http.StatusUnprocessableEntity},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.respondDomainError(w, tt.err, "GET", "/test")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
