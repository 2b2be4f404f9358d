// Package pkg holds shared identifiers for the chat service.
package pkg

// ModuleName tags chat service log lines.
const ModuleName = "chat"
