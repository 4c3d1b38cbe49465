package pipelinedomain

import "encoding/json"

// Response is what a handler hands back to the orchestrator: either the
// (possibly mutated) event, or a failure payload.
type Response struct {
	event   *Event
	failure *Failure
}

type Failure struct {
	Status       Status `json:"status"`
	ErrorMessage string `json:"error_message"`
	GUID         *Event `json:"guid,omitempty"`
}

func Succeeded(event *Event) *Response {
	return &Response{event: event}
}

// Failed builds a failure response. guid may be nil, in which case the
// payload carries no echo of the input.
func Failed(err error, guid *Event) *Response {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Response{failure: &Failure{
		Status:       StatusFailed,
		ErrorMessage: msg,
		GUID:         guid,
	}}
}

func (r *Response) IsFailure() bool {
	return r.failure != nil
}

func (r *Response) Event() *Event {
	return r.event
}

func (r *Response) Failure() *Failure {
	return r.failure
}

// Status reports the status carried by the response, if any.
func (r *Response) Status() (Status, bool) {
	if r.failure != nil {
		return r.failure.Status, true
	}
	if r.event == nil {
		return "", false
	}
	return r.event.Status()
}

func (r *Response) MarshalJSON() ([]byte, error) {
	if r.failure != nil {
		return json.Marshal(r.failure)
	}
	return r.event.MarshalJSON()
}
