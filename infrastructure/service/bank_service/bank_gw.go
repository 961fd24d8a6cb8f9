package bank_service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"margin-system/domain/constants"
	entities "margin-system/domain/entities/bank_gateway"
	"margin-system/utils/helpers"
)

const timeout = time.Second * 30

var refundFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "margin_gateway_refund_failures_total",
	Help: "Refund calls that errored or were declined",
})

type repoImpl struct {
	Uri        string
	ClientCode string
	Logger     *zap.Logger
}

func NewRepoImpl(uri, clientCode string, logger *zap.Logger) *repoImpl {
	return &repoImpl{
		Uri:        uri,
		ClientCode: clientCode,
		Logger:     logger,
	}
}

// ReFund executes an online refund against a previously captured payment. The
// order reference is the gateway idempotency key: repeating the call after a
// timeout settles on the first execution instead of refunding twice.
func (r repoImpl) ReFund(orderRef string, amount decimal.Decimal) (response entities.RefundRes, err error) {
	data := entities.RefundReqData{
		GatewayTransactionID: orderRef,
		Amount:               amount.String(),
	}

	body := entities.RefundReq{
		ClientCode: r.ClientCode,
		TransTime:  time.Now().Unix() * 1000,
		Data:       data,
	}
	body.Signature = helpers.CreateHash(r.ClientCode + orderRef + data.Amount + cast.ToString(body.TransTime))

	err = r.httpRequest(struct {
		Path     string
		Method   string
		Headers  map[string]string
		Body     interface{}
		Response interface{}
	}{
		Path:     "refund",
		Method:   "POST",
		Headers:  nil,
		Body:     body,
		Response: &response,
	})

	if err != nil {
		refundFailures.Inc()
		return entities.RefundRes{}, err
	}
	if !response.ErrorCode.IsSuccess() {
		refundFailures.Inc()

		// Timeout style codes mean the gateway may have executed the refund
		// anyway; the order reference keeps a repeated audit call idempotent.
		if helpers.IsStringSliceContains(constants.TimeoutErrCode, string(response.ErrorCode)) {
			return entities.RefundRes{}, fmt.Errorf("bank gateway timeout %v: %v, retry the audit", response.ErrorCode, response.Message)
		}
		if response.ErrorCode.IsFail() {
			return entities.RefundRes{}, fmt.Errorf("refund declined %v: %v", response.ErrorCode, response.Message)
		}
		return entities.RefundRes{}, errors.New(response.Message)
	}

	return response, err
}

func (r repoImpl) httpRequest(request struct {
	Path     string
	Method   string
	Headers  map[string]string
	Body     interface{}
	Response interface{}
}) (err error) {
	client := new(http.Client)

	client.Timeout = timeout

	jsonrequest, err := json.Marshal(request.Body)
	r.Logger.With(zapcore.Field{
		Key:    "request",
		Type:   zapcore.StringType,
		String: fmt.Sprintf("%v", string(jsonrequest)),
	}).Info("bank_request")
	req, err := http.NewRequest(request.Method, fmt.Sprintf("%v%v", r.Uri, request.Path), bytes.NewReader(jsonrequest))

	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", `application/json`)

	for key, value := range request.Headers {
		req.Header.Add(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode == 500 {
		responseByte, _ := ioutil.ReadAll(resp.Body)
		defer resp.Body.Close()
		r.Logger.Error("BANK GATEWAY SERVER ERROR: " + string(responseByte))
		return errors.New("BANK GATEWAY SERVER ERROR")
	}

	responseByte, err := ioutil.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	r.Logger.With(zapcore.Field{
		Key:    "uri",
		Type:   zapcore.StringType,
		String: fmt.Sprintf("%v%v", r.Uri, request.Path),
	}).With(zapcore.Field{
		Key:    "response",
		Type:   zapcore.StringType,
		String: string(responseByte),
	}).Info("http_request_data")

	return json.Unmarshal(responseByte, request.Response)
}
