// Package engagement holds the funnel's motivational layer.
//
// A Tracker subscribes to a session's store and turns room completions into
// celebrations, streaks and achievements. The package also decides which
// exit-intent prompt a step gets, generates social-proof ticker lines and
// picks the urgency or seasonal banner to show.
package engagement
