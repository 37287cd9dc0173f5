package helpers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
	pgmodels "github.com/supplyhub/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
	"github.com/supplyhub/yml-feed-parser/internal/platform/storage/storagetesting"
)

const (
	contentType = "Content-Type"
)

// WaitForRunToBeFinished is blocking helper function, returns latest run after it is finished.
func WaitForRunToBeFinished(t *testing.T, queryable qrm.Queryable, feedURL string) *models.Run {
	t.Helper()

	var feedID int
	for {
		<-time.After(time.Millisecond * 250)
		feedID = storagetesting.GetFeedID(t, queryable, feedURL)
		if feedID != 0 {
			break
		}
	}

	var latestRun *models.Run
	for {
		<-time.After(time.Millisecond * 500)
		latestRun = storagetesting.GetLatestRun(t, queryable, feedID)
		if latestRun != nil && latestRun.FinishedAt != nil {
			return latestRun
		}
	}
}

// GetParameters is helper function for getting feed parameters from db ordered by DisplayOrder.
func GetParameters(t *testing.T, queryable qrm.Queryable, feedURL string) []pgmodels.Parameter {
	t.Helper()

	feedID := storagetesting.GetFeedID(t, queryable, feedURL)
	parameters := storagetesting.GetParametersByFeedID(t, queryable, feedID)

	sort.Slice(parameters, func(i, j int) bool {
		if parameters[i].DisplayOrder != parameters[j].DisplayOrder {
			return parameters[i].DisplayOrder < parameters[j].DisplayOrder
		}
		return parameters[i].Name < parameters[j].Name
	})

	return parameters
}

// FeedXML wraps offers xml into a complete feed document with a fixed
// shop header, one currency and one category.
func FeedXML(t *testing.T, offersXML string) []byte {
	t.Helper()

	const envelope = `<?xml version="1.0" encoding="UTF-8"?>
<yml_catalog date="2026-01-15 12:00">
  <shop>
    <name>Техномаркет</name>
    <company>Техномаркет ТОВ</company>
    <url>https://technomarket.ua</url>
    <currencies>
      <currency id="UAH" rate="1"/>
    </currencies>
    <categories>
      <category id="1">Телевізори</category>
    </categories>
    <offers>%s</offers>
  </shop>
</yml_catalog>`

	return []byte(fmt.Sprintf(envelope, offersXML))
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting feed file to return, feed number is from 0 to len(feedFiles) inclusive.
func PrepareMockedHTTPServer(t *testing.T, feedFiles [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	feedFileToReturnIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/xml")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(feedFiles[feedFileToReturnIx])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { feedFileToReturnIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}
