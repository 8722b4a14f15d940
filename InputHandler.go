package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/samuelyuan/go-infinitegrid/camera"
)

type Action int

const (
	PLAYER_FORWARD Action = iota
	PLAYER_BACKWARD
	PLAYER_LEFT
	PLAYER_RIGHT
	PROGRAM_QUIT
)

var actionMovement = map[Action]camera.Movement{
	PLAYER_FORWARD:  camera.MoveForward,
	PLAYER_BACKWARD: camera.MoveBackward,
	PLAYER_LEFT:     camera.MoveLeft,
	PLAYER_RIGHT:    camera.MoveRight,
}

type InputHandler struct {
	actionToKeyMap map[Action]glfw.Key
	keysPressed    [glfw.KeyLast + 1]bool
}

func NewInputHandler() *InputHandler {
	actionToKeyMap := map[Action]glfw.Key{
		PLAYER_FORWARD:  glfw.KeyW,
		PLAYER_BACKWARD: glfw.KeyS,
		PLAYER_LEFT:     glfw.KeyA,
		PLAYER_RIGHT:    glfw.KeyD,
		PROGRAM_QUIT:    glfw.KeyEscape,
	}

	return &InputHandler{
		actionToKeyMap: actionToKeyMap,
	}
}

func (handler *InputHandler) isActive(a Action) bool {
	key, ok := handler.actionToKeyMap[a]
	if !ok {
		return false
	}
	return handler.keysPressed[key]
}

// movement folds the held movement actions into the set the camera consumes.
func (handler *InputHandler) movement() camera.Movement {
	var keys camera.Movement
	for action, move := range actionMovement {
		if handler.isActive(action) {
			keys |= move
		}
	}
	return keys
}

func (handler *InputHandler) setKey(key glfw.Key, action glfw.Action) {
	// KeyUnknown is -1
	if key < 0 || key > glfw.KeyLast {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		handler.keysPressed[key] = true
	case glfw.Release:
		handler.keysPressed[key] = false
	}
}

func (handler *InputHandler) keyCallback(window *glfw.Window, key glfw.Key, scancode int,
	action glfw.Action, mods glfw.ModifierKey) {
	handler.setKey(key, action)
}
