package model

// Package model defines domain data structures shared by the services and the
// UI: rename proposals, batch results, background batch tasks and their
// status enums. Structures are plain values so the UI can bind to them.
