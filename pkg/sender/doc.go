// Package sender is the client side of the AnimatedLEDStrip socket protocol.
//
// A Sender owns one TCP connection to the server. Requests (start and end
// animation) are written as framed messages; everything the server pushes
// back is decoded on a single receive goroutine and handed to the callbacks
// registered with OnAnimationInfo, OnAnimationData, OnStripInfo and
// OnEndAnimation.
//
// Frames look like
//
//	DATA:{"animation":"Meteor",...};;;
//
// a four character tag, a colon, a JSON body and the ";;;" delimiter.
package sender
