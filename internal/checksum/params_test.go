package checksum

import "testing"

type paramsBase struct {
	MerchantID string `json:"merchantId"`
	TimeStamp  string `json:"timeStamp"`
}

type paramsRequest struct {
	paramsBase

	Amount   string  `json:"amount,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Note     *string `json:"note,omitempty"`
	Count    int     `json:"count"`
	internal string
	NoTag    string
}

func TestParamsFrom(t *testing.T) {
	usd := "USD"
	req := &paramsRequest{
		paramsBase: paramsBase{MerchantID: "m-1", TimeStamp: "t-1"},
		Amount:     "5.00",
		Currency:   &usd,
		internal:   "hidden",
		NoTag:      "skipped",
	}

	params := ParamsFrom(req)

	want := map[string]string{
		"merchantId": "m-1",
		"timeStamp":  "t-1",
		"amount":     "5.00",
		"currency":   "USD",
	}
	if len(params) != len(want) {
		t.Fatalf("unexpected params: %v", params)
	}
	for k, v := range want {
		if params[k] != v {
			t.Fatalf("param %q: got %q want %q", k, params[k], v)
		}
	}
	if _, ok := params["note"]; ok {
		t.Fatalf("nil *string must be skipped")
	}
	if _, ok := params["count"]; ok {
		t.Fatalf("non-string fields must be skipped")
	}
}

func TestParamsFromNilPointer(t *testing.T) {
	var req *paramsRequest
	if params := ParamsFrom(req); len(params) != 0 {
		t.Fatalf("nil request must produce no params, got %v", params)
	}
}
