// Package render decouples visualization from the codec pipeline.
//
// The pipeline publishes a Frame for every stage it completes: the original
// sphere points, their stereographic projection and the recovered sphere
// points. A Renderer decides what to do with them. Frames carry the point
// order so a plotter can label each point with its message position.
package render
