package http

import (
	"encoding/json"
	"regexp"
)

// WebhookRequest is the Dialogflow fulfillment payload. Only the fields the
// webhook consumes are modeled; the rest of the payload is ignored.
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the matched intent, its extracted parameters and the
// conversation contexts the session id is embedded in.
type QueryResult struct {
	Intent         Intent          `json:"intent"`
	Parameters     Parameters      `json:"parameters"`
	OutputContexts []OutputContext `json:"outputContexts"`
}

// Intent identifies which conversational action the NLU matched.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// OutputContext is one active conversation context. Its name embeds the
// session id.
type OutputContext struct {
	Name string `json:"name"`
}

// Parameters are the entity values Dialogflow extracted from the utterance.
// The food-item and number sequences are parallel: the i-th number is the
// quantity of the i-th item.
type Parameters struct {
	FoodItems []string   `json:"food-item"`
	Number    NumberList `json:"number"`
}

// NumberList tolerates Dialogflow's habit of sending a bare number for a
// single value and an array for several. Values are floats on the wire even
// when they are counts.
type NumberList []float64

func (n *NumberList) UnmarshalJSON(data []byte) error {
	var single float64
	if err := json.Unmarshal(data, &single); err == nil {
		*n = NumberList{single}
		return nil
	}

	var many []float64
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*n = NumberList(many)
	return nil
}

// Ints truncates the float values to integers, the way the counts are
// consumed downstream.
func (n NumberList) Ints() []int {
	out := make([]int, len(n))
	for i, v := range n {
		out[i] = int(v)
	}
	return out
}

// WebhookResponse is the fulfillment reply rendered back to the caller.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

var sessionIDPattern = regexp.MustCompile(`sessions/(.*?)/contexts`)

// ExtractSessionID pulls the session id out of an output context name such
// as "projects/p/agent/sessions/abc-123/contexts/ongoing-order".
// Returns the empty string when the name does not embed one.
func ExtractSessionID(contextName string) string {
	match := sessionIDPattern.FindStringSubmatch(contextName)
	if match == nil {
		return ""
	}
	return match[1]
}
