package bank_service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"margin-system/domain/constants"
	entities "margin-system/domain/entities/bank_gateway"
	"margin-system/utils/helpers"
	"margin-system/utils/logger"
)

func Test_repoImpl_ReFund(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	tests := []struct {
		name            string
		errorCode       string
		message         string
		status          int
		wantErr         bool
		wantErrContains string
	}{
		{
			name:      "refund accepted",
			errorCode: "200",
			status:    http.StatusOK,
			wantErr:   false,
		},
		{
			name:            "refund declined",
			errorCode:       "401",
			message:         "transaction not refundable",
			status:          http.StatusOK,
			wantErr:         true,
			wantErrContains: "declined",
		},
		{
			name:            "gateway timeout code is flagged retryable",
			errorCode:       "306",
			message:         "processing",
			status:          http.StatusOK,
			wantErr:         true,
			wantErrContains: "retry the audit",
		},
		{
			name:    "gateway server error",
			status:  http.StatusInternalServerError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got entities.RefundReq

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				assert.Equal(t, "/refund", req.URL.Path)
				assert.NoError(t, json.NewDecoder(req.Body).Decode(&got))

				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					json.NewEncoder(w).Encode(entities.RefundRes{
						ErrorCode: constants.BankGwStatus(tt.errorCode),
						Message:   tt.message,
						Data:      entities.RefundResData{BankTransactionId: "BT-1"},
					})
				}
			}))
			defer server.Close()

			r := NewRepoImpl(server.URL+"/", "MARGIN01", log)
			response, err := r.ReFund("GW-0001", decimal.NewFromInt(300))

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrContains != "" {
					assert.Contains(t, err.Error(), tt.wantErrContains)
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "BT-1", response.Data.BankTransactionId)

			assert.Equal(t, "MARGIN01", got.ClientCode)
			assert.Equal(t, "GW-0001", got.Data.GatewayTransactionID)
			assert.Equal(t, "300", got.Data.Amount)

			wantSig := helpers.CreateHash("MARGIN01" + got.Data.GatewayTransactionID + got.Data.Amount + cast.ToString(got.TransTime))
			assert.Equal(t, wantSig, got.Signature)
		})
	}
}
