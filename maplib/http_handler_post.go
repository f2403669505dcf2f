package maplib

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/qri-io/jsonschema"
)

var handleAPIRequestJSONSchema = func() *jsonschema.Schema {
	data := `{
        "type": "object",
        "required": [
            "provider",
            "text"
        ],
        "additionalProperties": false,
        "properties": {
            "provider": {
                "type": "string",
                "enum": [
                    "ipapi",
                    "ipinfo",
                    "ipgeolocation",
                    "ip-api.com",
                    "ipinfo.io",
                    "ipgeolocation.io"
                ]
            },
            "token": {
                "type": "string"
            },
            "text": {
                "type": "string"
            }
        }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type handleAPIRequest struct {
	Provider string `json:"provider"`
	Token    string `json:"token"`
	Text     string `json:"text"`
}

type handleAPIResponse struct {
	Result *Report `json:"result"`
}

func (h httpHandler) handleUpload(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, h.uploadLimit)

	if err := req.ParseMultipartForm(h.uploadLimit); err != nil {
		h.sendError(w, err, "Cannot parse uploaded form", http.StatusBadRequest)

		return
	}

	selected, err := ParseProviderName(req.FormValue("provider"))
	if err != nil {
		h.sendError(w, err, "Unsupported geolocation service", http.StatusBadRequest)

		return
	}

	file, header, err := req.FormFile("file")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			h.sendError(w, err, "Cannot read uploaded file", http.StatusBadRequest)

			return
		}

		self, messages := h.mapper.LocateSelf(req.Context())

		h.renderPage(w, Page{
			Selected: selected,
			Self:     self,
			Messages: append(messages, Message{Level: LevelInfo, Text: "Please upload a log file."}),
		})

		return
	}

	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.sendError(w, err, "Cannot read uploaded file", http.StatusBadRequest)

		return
	}

	report := h.mapper.Run(req.Context(), Request{
		Provider:   selected.String(),
		Credential: req.FormValue("token"),
		Content:    content,
	})

	h.renderPage(w, Page{
		Selected: selected,
		Self:     report.Self,
		Messages: report.Messages,
		Report:   report,
		FileName: header.Filename,
	})
}

func (h httpHandler) handleAPI(w http.ResponseWriter, req *http.Request) {
	if !strings.Contains(req.Header.Get("Content-Type"), "application/json") {
		h.sendError(w, nil, "Incorrect content type", http.StatusUnsupportedMediaType)

		return
	}

	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, req.Body, h.uploadLimit))

	req.Body.Close()

	if err != nil {
		h.sendError(w, err, "Cannot read request body", http.StatusBadRequest)

		return
	}

	errs, err := handleAPIRequestJSONSchema.ValidateBytes(req.Context(), bodyBytes)
	if err != nil {
		h.sendError(w, err, "Invalid request body", http.StatusBadRequest)

		return
	}

	if len(errs) > 0 {
		h.sendError(w, errs[0], "Invalid request body", http.StatusBadRequest)

		return
	}

	parsedRequest := &handleAPIRequest{}
	if err := json.Unmarshal(bodyBytes, parsedRequest); err != nil {
		h.sendError(w, err, "Cannot parse request JSON", http.StatusBadRequest)

		return
	}

	report := h.mapper.Run(req.Context(), Request{
		Provider:   parsedRequest.Provider,
		Credential: parsedRequest.Token,
		Content:    []byte(parsedRequest.Text),
	})

	if report.Condition != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
	}

	h.encodeJSON(w, handleAPIResponse{Result: report})
}
