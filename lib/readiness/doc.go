// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package readiness answers one question for the relay loop: "block
// until this descriptor is ready for this direction, the timeout
// elapses, or an interrupt is requested, whichever comes first."
//
// A [Source] watches one input and one output descriptor. Wait arms
// exactly one of them per call, so a hung-up or always-writable idle
// side never wakes a wait for the other side. Interrupt is the only
// method safe to call from other goroutines: it records a reason and
// writes to a wake descriptor (an eventfd on Linux, a self-pipe on other
// Unix systems) that every Wait also watches. The signal forwarder in
// cmd/zpv uses it to inject interrupts into the loop without touching
// relay state.
//
// Two backends exist:
//
//   - [PollSource] uses poll(2). It works for every descriptor type,
//     including regular files and character devices.
//   - [EpollSource] (Linux) uses epoll(7), re-registering when the
//     direction changes. epoll rejects regular files with EPERM.
//
// [Open] picks the best backend for the given descriptors. [FD] wraps a
// raw descriptor with read(2)/write(2) semantics suitable for the
// relay: EINTR is retried, EAGAIN becomes [ErrWouldBlock], and a zero
// read becomes [io.EOF].
package readiness
