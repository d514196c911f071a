package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("429"))
	RecordAPIRequest(429)
	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("429")))

	before = testutil.ToFloat64(APIRequestsTotal.WithLabelValues("error"))
	RecordAPIRequest(0)
	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("error")))
}

func TestRecordAPIRetry(t *testing.T) {
	before := testutil.ToFloat64(APIRetriesTotal)
	RecordAPIRetry()
	assert.Equal(t, before+1, testutil.ToFloat64(APIRetriesTotal))
}

func TestRecordItems(t *testing.T) {
	counter := SyncItemsTotal.WithLabelValues("test", OutcomeAdded)
	before := testutil.ToFloat64(counter)

	RecordItems("test", OutcomeAdded, 3)
	RecordItems("test", OutcomeAdded, 0)

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestRecordRun(t *testing.T) {
	success := SyncRunsTotal.WithLabelValues("test", "success")
	failure := SyncRunsTotal.WithLabelValues("test", "failure")
	okBefore := testutil.ToFloat64(success)
	failBefore := testutil.ToFloat64(failure)

	RecordRun("test", time.Second, nil)
	RecordRun("test", time.Second, errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(success))
	assert.Equal(t, failBefore+1, testutil.ToFloat64(failure))
}
