package config

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := Default()
	if o.TabWidth != 4 {
		t.Errorf("expected default TabWidth 4, got %d", o.TabWidth)
	}
	if !o.AutoPair || !o.AutoIndent || !o.ShowNumbers || !o.EnableMouse || !o.EnableColor {
		t.Errorf("expected the usual defaults on, got %+v", o)
	}
	if o.RelativeNumbers || o.OneMore {
		t.Errorf("expected relativenumber and onemore off by default, got %+v", o)
	}
	if o.Background != ColorDefault || o.SearchColor != ColorYellow {
		t.Errorf("expected default colors, got background=%q searchcolor=%q", o.Background, o.SearchColor)
	}
}

func TestApplyToggleWithNoArg(t *testing.T) {
	o := Default()
	if err := Apply(&o, "number", ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if o.ShowNumbers {
		t.Error("expected an empty-arg 'set number' to toggle it off from its default on state")
	}
}

func TestApplyExplicitOnOff(t *testing.T) {
	o := Default()
	if err := Apply(&o, "mouse", "off"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if o.EnableMouse {
		t.Error("expected 'set mouse off' to clear EnableMouse")
	}
	if err := Apply(&o, "mouse", "on"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !o.EnableMouse {
		t.Error("expected 'set mouse on' to set EnableMouse")
	}
}

func TestApplyTabWidthValidation(t *testing.T) {
	o := Default()
	if err := Apply(&o, "tabwidth", "8"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if o.TabWidth != 8 {
		t.Errorf("expected TabWidth 8, got %d", o.TabWidth)
	}
	if err := Apply(&o, "tabwidth", "0"); err == nil {
		t.Error("expected 'set tabwidth 0' to be rejected")
	}
	if err := Apply(&o, "tabwidth", "nope"); err == nil {
		t.Error("expected a non-numeric tabwidth to be rejected")
	}
}

func TestApplyColorValidation(t *testing.T) {
	o := Default()
	if err := Apply(&o, "background", "blue"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if o.Background != ColorBlue {
		t.Errorf("expected Background blue, got %q", o.Background)
	}
	if err := Apply(&o, "background", "chartreuse"); err == nil {
		t.Error("expected an unknown color name to be rejected")
	}
}

func TestApplyUnknownOption(t *testing.T) {
	o := Default()
	if err := Apply(&o, "bogus", ""); err == nil {
		t.Error("expected an unknown option name to return an error")
	}
}
