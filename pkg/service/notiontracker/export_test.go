package notiontracker

// Export internal functions for testing
var BodyBlocks = bodyBlocks
