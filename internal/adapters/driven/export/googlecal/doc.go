// Package googlecal exports the day's schedule to Google Calendar.
//
// Each task becomes a timed event on a chosen date. Events are tagged with
// the task id in a private extended property, so repeated exports update
// existing events instead of duplicating them.
//
// Authorization uses the OAuth installed-application flow: an OAuth client
// file from the Google Cloud console (~/.dayplan/credentials.json by
// default), a browser consent screen captured by a localhost callback
// server, and a cached token at ~/.dayplan/calendar_token.json.
package googlecal
