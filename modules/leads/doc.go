// Package leads exposes the submission pipeline over HTTP.
//
// Router mounts POST /contact, /project-request and /job-application.
// Each endpoint decodes a JSON object, runs it through the pipeline and
// answers with
//
//	{"success": bool, "message": string, "data": {...}, "errors": [...], "debug": string}
//
// where data, errors and debug are present only when set. OPTIONS
// requests get 204 with CORS headers; any other method gets a JSON 405.
package leads
