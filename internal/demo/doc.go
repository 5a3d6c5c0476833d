// Package demo runs the person walkthrough: insert one, insert many, query
// by name, query one by favorite food, load by id, mutate and save, atomic
// find-and-update, find-and-delete by id, bulk delete, and a sorted, limited,
// projected search.
//
// Steps are an explicit ordered list. The Runner executes them one at a
// time, records a Result for each, logs it, and stops at the first error.
// The error is reported on the Report rather than thrown. Values that later
// steps depend on travel through State. When one of them is missing, the
// dependent step fails with ErrMissingPrerequisite instead of dereferencing
// nothing.
//
// The literal records and query values live in scenario.yaml, which is
// embedded at build time and can be replaced with LoadScenario.
package demo
