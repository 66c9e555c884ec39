package repository

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type wireItem = map[string]any

// fakeDynamo keeps items by "id" and serves the operations the repositories
// issue. It only knows the condition expressions used in this package.
type fakeDynamo struct {
	t     *testing.T
	mu    sync.Mutex
	items map[string]wireItem
	calls map[string][]wireItem
}

func newFakeDynamo(t *testing.T) (*fakeDynamo, *dynamodb.Client) {
	t.Helper()
	f := &fakeDynamo{t: t, items: map[string]wireItem{}, calls: map[string][]wireItem{}}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)

	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("test", "test", ""),
		RetryMaxAttempts: 1,
	})
	return f, client
}

func (f *fakeDynamo) serve(w http.ResponseWriter, r *http.Request) {
	op := strings.TrimPrefix(r.Header.Get("X-Amz-Target"), "DynamoDB_20120810.")
	var req wireItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.t.Errorf("decode %s: %v", op, err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op] = append(f.calls[op], req)

	switch op {
	case "GetItem":
		id := keyID(req["Key"])
		if it, ok := f.items[id]; ok {
			writeJSON(w, http.StatusOK, wireItem{"Item": it})
			return
		}
		writeJSON(w, http.StatusOK, wireItem{})
	case "PutItem":
		it := req["Item"].(map[string]any)
		cond, _ := req["ConditionExpression"].(string)
		current, exists := f.items[keyID(it)]
		if (strings.Contains(cond, "attribute_not_exists(#id)") && exists) ||
			(strings.Contains(cond, "attribute_exists(#id)") && !exists) ||
			(strings.Contains(cond, "attribute_not_exists(order_id)") && exists && current["order_id"] != nil) {
			writeError(w, "ConditionalCheckFailedException", nil)
			return
		}
		f.items[keyID(it)] = it
		writeJSON(w, http.StatusOK, wireItem{})
	case "UpdateItem":
		id := keyID(req["Key"])
		it, ok := f.items[id]
		if !ok || it["order_id"] != nil {
			writeError(w, "ConditionalCheckFailedException", nil)
			return
		}
		values := req["ExpressionAttributeValues"].(map[string]any)
		it["order_id"] = values[":order_id"]
		it["step"] = values[":step"]
		it["updated_at"] = values[":updated_at"]
		writeJSON(w, http.StatusOK, wireItem{"Attributes": it})
	case "TransactWriteItems":
		var puts []wireItem
		reasons := []wireItem{}
		failed := false
		for _, ti := range req["TransactItems"].([]any) {
			put := ti.(map[string]any)["Put"].(map[string]any)
			it := put["Item"].(map[string]any)
			puts = append(puts, it)
			if _, exists := f.items[keyID(it)]; exists {
				failed = true
				reasons = append(reasons, wireItem{"Code": "ConditionalCheckFailed", "Message": "The conditional request failed"})
			} else {
				reasons = append(reasons, wireItem{"Code": "None"})
			}
		}
		if failed {
			writeError(w, "TransactionCanceledException", reasons)
			return
		}
		for _, it := range puts {
			f.items[keyID(it)] = it
		}
		writeJSON(w, http.StatusOK, wireItem{})
	default:
		f.t.Errorf("unexpected operation %q", op)
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (f *fakeDynamo) requests(op string) []wireItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]wireItem(nil), f.calls[op]...)
}

func (f *fakeDynamo) has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.items[id]
	return ok
}

func keyID(v any) string {
	m, _ := v.(map[string]any)
	id, _ := m["id"].(map[string]any)
	s, _ := id["S"].(string)
	return s
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code string, reasons []wireItem) {
	body := wireItem{
		"__type":  "com.amazonaws.dynamodb.v20120810#" + code,
		"message": "The conditional request failed",
	}
	if reasons != nil {
		body["CancellationReasons"] = reasons
	}
	writeJSON(w, http.StatusBadRequest, body)
}
