package main

import (
	"fmt"
	"os"

	mgl "github.com/go-gl/mathgl/mgl32"

	"vttl3d/internal/behaviour"
	"vttl3d/internal/config"
	"vttl3d/internal/engine"
	"vttl3d/internal/input"
	"vttl3d/internal/renderer"
	"vttl3d/scripts"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(cfg)
	setupScene(eng, cfg)

	if err := eng.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
		os.Exit(1)
	}
}

func setupScene(eng *engine.Engine, cfg *config.Config) {
	scene := eng.Scene

	// Table surface and a few minis to orbit around.
	table := behaviour.NewGameObject("Table")
	tableModel := renderer.NewModel("table")
	tableModel.SetScale(20, 0.2, 20)
	table.AddComponent(behaviour.NewMeshComponent(tableModel))
	scene.RegisterGameObject(table)

	for i := 0; i < 4; i++ {
		mini := behaviour.NewGameObject(fmt.Sprintf("Mini%d", i+1))
		model := renderer.NewModel(mini.Name)
		model.SetPosition(float32(i*3)-4.5, 0.5, 0)
		mini.AddComponent(behaviour.NewMeshComponent(model))
		scene.RegisterGameObject(mini)
	}

	// The selection marker keeps full quality even in quick-render mode.
	marker := behaviour.NewGameObject("SelectionMarker")
	marker.Tag = cfg.QuickRender.ExemptTag
	marker.AddComponent(behaviour.NewMeshComponent(renderer.NewModel("marker")))
	scene.RegisterGameObject(marker)

	sun := behaviour.NewGameObject("Sun")
	sun.AddComponent(behaviour.NewLightComponent(renderer.CreateDirectionalLight(
		mgl.Vec3{0, -1, -0.3}.Normalize(),
		mgl.Vec3{1.0, 0.95, 0.9},
		0.8,
	)))
	scene.RegisterGameObject(sun)

	camObj := behaviour.NewGameObject("MainCamera")
	camObj.AddComponent(behaviour.NewCameraComponent(eng.OrbitCamera.Camera))

	camObj.AddComponent(behaviour.NewScriptComponent("MouseInputScript", &scripts.MouseInputScript{
		OrbitCamera: eng.OrbitCamera,
		Input:       eng.Input,
	}))
	camObj.AddComponent(behaviour.NewScriptComponent("TouchInputScript", &scripts.TouchInputScript{
		OrbitCamera: eng.OrbitCamera,
		Input:       eng.Input,
	}))
	camObj.AddComponent(behaviour.NewScriptComponent("QuickRenderScript", &scripts.QuickRenderScript{
		Scene:          scene,
		Input:          eng.Input,
		LowQualityKey:  input.KeyFromString(cfg.QuickRender.LowQualityKey),
		HighQualityKey: input.KeyFromString(cfg.QuickRender.HighQualityKey),
		ExemptTag:      cfg.QuickRender.ExemptTag,
		RestoreDur:     cfg.QuickRender.RestoreMillis / 1000,
		LowShadowRes:   cfg.QuickRender.ShadowResolution,
	}))
	scene.RegisterGameObject(camObj)

	// Frame the table on startup.
	eng.OrbitCamera.FocusOn(mgl.Vec3{0, 0, 0}, 15, 45, -30, 1.0)
}
