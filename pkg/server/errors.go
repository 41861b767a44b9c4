// Copyright (c) 2026, Larder Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"time"

	larderrors "github.com/larderhq/larder/pkg/errors"
	"github.com/larderhq/larder/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the error payload returned by every API endpoint.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code larderrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps a coded error to the right HTTP status and writes
// the structured response.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	code := larderrors.CodeOf(err)
	WriteError(w, r, statusForCode(code), code, message, retryableForCode(code), details)
}

func statusForCode(code larderrors.ErrorCode) int {
	switch code {
	case larderrors.ErrCodeNotFound:
		return http.StatusNotFound
	case larderrors.ErrCodeInvalidRequest, larderrors.ErrCodeMalformedCatalog:
		return http.StatusBadRequest
	case larderrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case larderrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case larderrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func retryableForCode(code larderrors.ErrorCode) bool {
	switch code {
	case larderrors.ErrCodeRateLimitExceeded, larderrors.ErrCodeUnavailable, larderrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}
