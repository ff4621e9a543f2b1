package slacknotify

// Export internal functions for testing
var FormatBatchSummary = formatBatchSummary
