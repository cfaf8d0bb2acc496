package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/bangtaeuk/whereorwhen/internal/database"
	"github.com/bangtaeuk/whereorwhen/internal/protocol"
)

// RateBatchWriter consumes exchange-rate observations from Kafka and
// batch-writes them to the database.
type RateBatchWriter struct {
	consumer      *Consumer
	db            *database.DB
	batchSize     int
	flushInterval time.Duration
	stopCh        chan struct{}
	wg            sync.WaitGroup
}

// NewRateBatchWriter creates a new rate batch writer
func NewRateBatchWriter(consumer *Consumer, db *database.DB, batchSize int, flushInterval time.Duration) *RateBatchWriter {
	return &RateBatchWriter{
		consumer:      consumer,
		db:            db,
		batchSize:     batchSize,
		flushInterval: flushInterval,
		stopCh:        make(chan struct{}),
	}
}

// Start begins consuming and writing to database
func (rw *RateBatchWriter) Start(ctx context.Context) {
	rw.wg.Add(1)
	go rw.run(ctx)
}

// Stop stops the batch writer gracefully
func (rw *RateBatchWriter) Stop() {
	close(rw.stopCh)
	rw.wg.Wait()
}

func (rw *RateBatchWriter) run(ctx context.Context) {
	defer rw.wg.Done()

	var batch []kafka.Message
	ticker := time.NewTicker(rw.flushInterval)
	defer ticker.Stop()

	msgChan := make(chan kafka.Message, 10)
	go func() {
		for {
			msg, err := rw.consumer.Consume(ctx)
			if err != nil {
				fmt.Printf("Consumer error: %v\n", err)
				continue
			}
			msgChan <- msg
		}
	}()

	for {
		select {
		case <-rw.stopCh:
			// Flush remaining batch before stopping
			if len(batch) > 0 {
				rw.flush(ctx, batch)
			}
			return

		case <-ticker.C:
			if len(batch) > 0 {
				rw.flush(ctx, batch)
				batch = nil
			}

		case msg := <-msgChan:
			batch = append(batch, msg)

			if len(batch) >= rw.batchSize {
				rw.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

func (rw *RateBatchWriter) flush(ctx context.Context, batch []kafka.Message) {
	successCount := 0
	for _, msg := range batch {
		if err := rw.processMessage(ctx, msg); err != nil {
			fmt.Printf("Failed to process rate message: %v\n", err)
			continue
		}
		successCount++

		// Commit offset after successful processing
		if err := rw.consumer.Commit(ctx, msg); err != nil {
			fmt.Printf("Failed to commit offset: %v\n", err)
		}
	}

	fmt.Printf("Flushed batch of %d rate observations to database\n", successCount)
}

func (rw *RateBatchWriter) processMessage(ctx context.Context, msg kafka.Message) error {
	rateMsg, err := protocol.DecodeRate(msg.Value)
	if err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}

	date, err := rateMsg.ParseDate()
	if err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}

	row := &database.ExchangeRateRow{
		Currency: rateMsg.Currency,
		Date:     date,
		Rate:     rateMsg.Rate,
	}

	if err := rw.db.UpsertExchangeRate(ctx, row); err != nil {
		return fmt.Errorf("failed to upsert rate: %w", err)
	}

	return nil
}
