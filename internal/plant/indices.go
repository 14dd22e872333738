// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plant

import "fmt"

// BodyIndex is the stable handle of a body.
type BodyIndex int

// JointIndex is the stable handle of a joint.
type JointIndex int

// FrameIndex is the stable handle of a frame.
type FrameIndex int

// JointActuatorIndex is the stable handle of a joint actuator.
type JointActuatorIndex int

// NoBody marks an unset body reference, e.g. a joint declared without a parent.
const NoBody BodyIndex = -1

// WorldBody is the index of the predefined world body.
const WorldBody BodyIndex = 0

// WorldBodyName names the world body and its body frame.
const WorldBodyName = "world"

// Entity kinds as they appear in messages.
const (
	KindBody          = "Body"
	KindJoint         = "Joint"
	KindFrame         = "Frame"
	KindJointActuator = "Joint actuator"
)

func (i BodyIndex) String() string          { return fmt.Sprintf("Body(%d)", int(i)) }
func (i JointIndex) String() string         { return fmt.Sprintf("Joint(%d)", int(i)) }
func (i FrameIndex) String() string         { return fmt.Sprintf("Frame(%d)", int(i)) }
func (i JointActuatorIndex) String() string { return fmt.Sprintf("JointActuator(%d)", int(i)) }
