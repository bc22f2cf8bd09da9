// Package api exposes the application over HTTP. It is a thin JSON
// layer on top of the materna.App facade, served under /api.
package api
