package entities

import "time"

// Metadata extra information attached to every piece of data that leaves the explorer
// + City: city which belongs the data
// + Type: kind of payload, e.g. report
// + Stage: component that built the payload
// + Message: free text, used to carry the applied filters
// + CreatedAt: moment in which the payload was built
type Metadata struct {
	City      string    `json:"city"`
	Type      string    `json:"type"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMetadata(city string, dataType string, stage string, message string) Metadata {
	return Metadata{
		City:      city,
		Type:      dataType,
		Stage:     stage,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetStage() string {
	return m.Stage
}

func (m Metadata) GetMessage() string {
	return m.Message
}
