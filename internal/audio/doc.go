package audio

// Package audio wraps the audio library behind a small Sound/Backend contract.
// Sounds load asynchronously and report load, loaderror, end, stop and fade
// events on a single ordered queue, so playback logic can run one event at a
// time. The concrete backend is built on ebiten's audio context.
