package communication

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
)

const (
	publisherStr    = "report-publisher"
	contentTypeJson = "application/json"
)

// ReportPublisher sends the reports built in each session to some destination
type ReportPublisher interface {
	Publish(ctx context.Context, report *report.Report) error
	Close() error
}

// queuePublisher the subset of RabbitMQ used to publish reports
type queuePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
	KillBadBunny() error
}

// QueueReportPublisher publishes reports as JSON in a queue
type QueueReportPublisher struct {
	rabbitMQ  queuePublisher
	queueName string
	timeout   time.Duration
}

// NewRabbitReportPublisher connects to RabbitMQ and declares the queue in which reports are published
func NewRabbitReportPublisher(rabbitURL string, queueConfig QueueDeclarationConfig, timeout time.Duration) (*QueueReportPublisher, error) {
	rabbitMQ, err := NewRabbitMQ(rabbitURL)
	if err != nil {
		return nil, err
	}

	err = rabbitMQ.DeclareNonAnonymousQueues([]QueueDeclarationConfig{queueConfig})
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}

	log.Infof("[component: %s][status: OK] queue %s declared correctly!", publisherStr, queueConfig.Name)
	return NewQueueReportPublisher(rabbitMQ, queueConfig.Name, timeout), nil
}

func NewQueueReportPublisher(rabbitMQ queuePublisher, queueName string, timeout time.Duration) *QueueReportPublisher {
	return &QueueReportPublisher{
		rabbitMQ:  rabbitMQ,
		queueName: queueName,
		timeout:   timeout,
	}
}

// Publish marshals the report and publishes it in the queue
func (p *QueueReportPublisher) Publish(ctx context.Context, report *report.Report) error {
	message, err := report.Marshal()
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.rabbitMQ.PublishMessageInQueue(ctx, p.queueName, message, contentTypeJson)
	if err != nil {
		return fmt.Errorf("error publishing report %s in queue %s: %w", report.SessionID, p.queueName, err)
	}

	log.Debugf("[component: %s][session: %s][status: OK] report published in %s", publisherStr, report.SessionID, p.queueName)
	return nil
}

func (p *QueueReportPublisher) Close() error {
	return p.rabbitMQ.KillBadBunny()
}

// NoopReportPublisher discards every report. Used when publishing is disabled
type NoopReportPublisher struct{}

func (NoopReportPublisher) Publish(context.Context, *report.Report) error {
	return nil
}

func (NoopReportPublisher) Close() error {
	return nil
}
