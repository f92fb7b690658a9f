package discord

import "errors"

// ErrEmptyToken indicates that no token was provided and no session was injected via WithSession.
var ErrEmptyToken = errors.New("token must be set or a session must be provided via WithSession")

// ErrNoAuthor indicates that the given message has no author.
var ErrNoAuthor = errors.New("message has no author")

// ErrTooLongDescription indicates that an embed description exceeds MaxDescriptionLength.
// Discord rejects such an embed, so the conversion fails before any request is made.
var ErrTooLongDescription = errors.New("the description exceeds the maximum length of 4096 characters")

// ErrTooManyFields indicates that an embed has more than MaxEmbedFields fields.
var ErrTooManyFields = errors.New("the number of fields exceeds the maximum of 25")

// ErrTooLongContent indicates that message content exceeds MaxContentLength UTF-16 code units.
var ErrTooLongContent = errors.New("the content exceeds the maximum length of 2000 characters")

// ErrNilMessage indicates that a nil *Message was given.
var ErrNilMessage = errors.New("message must not be nil")

// ErrUnknownMentionType indicates that a decoded mention has an unsupported type.
var ErrUnknownMentionType = errors.New("unknown mention type")
