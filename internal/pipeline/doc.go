// Package pipeline drives a rename batch: it walks the candidates of a
// directory, decides each file's new name, renames it and records the
// before/after state for the report.
//
// Each candidate moves through
//
//	discovered → decoded → skipped | unchanged | renamed | failed
//
// and only renamed candidates produce a [Record]. A candidate that cannot be
// decoded (the filter or template needs a part the name lacks) is logged and
// skipped with a [DecodeError]; a target that is invalid or already taken
// fails with a [RenameError]. Neither stops the batch.
//
// Compile turns a config.Config into a [Job] before anything is touched, so
// configuration mistakes never leave a half-renamed directory.
package pipeline
