// Package api handles incoming HTTP requests for the questions and answers
// resources. It validates request bodies and path IDs, calls the stores,
// and formats JSON responses.
package api
