package profile

// DefaultComponentsXML is the built-in component descriptor the engine
// decodes at startup (spec.md §4.J). It is hand-authored to match the
// node set builtin.Register installs, and is shaped so that the
// Interchange profile's component set cannot reach KeyDeviceSensor
// (spec.md §8 scenario 5): that node type only appears under
// KeyDeviceSensor level 1, a component Interchange never lists.
const DefaultComponentsXML = `<?xml version="1.0" encoding="UTF-8"?>
<components>
  <component name="Core">
    <level number="1">
      <nodeType name="Group" metatypeId="urn:vscene:node:Group">
        <interface>children</interface>
        <interface>bboxCenter</interface>
        <interface>bboxSize</interface>
        <interface>addChildren</interface>
        <interface>removeChildren</interface>
      </nodeType>
    </level>
    <level number="2">
      <requires component="Core" level="1"/>
    </level>
  </component>

  <component name="Grouping">
    <level number="1">
      <requires component="Core" level="1"/>
      <nodeType name="Transform" metatypeId="urn:vscene:node:Transform">
        <interface>children</interface>
        <interface>translation</interface>
        <interface>rotation</interface>
        <interface>scale</interface>
        <interface>scaleOrientation</interface>
        <interface>center</interface>
        <interface>bboxCenter</interface>
        <interface>bboxSize</interface>
        <interface>addChildren</interface>
        <interface>removeChildren</interface>
      </nodeType>
    </level>
    <level number="2">
      <requires component="Grouping" level="1"/>
    </level>
  </component>

  <component name="Shape">
    <level number="1">
      <requires component="Core" level="1"/>
      <nodeType name="Shape" metatypeId="urn:vscene:node:Shape">
        <interface>geometry</interface>
        <interface>appearance</interface>
      </nodeType>
      <nodeType name="Appearance" metatypeId="urn:vscene:node:Appearance">
        <interface>material</interface>
        <interface>texture</interface>
        <interface>textureTransform</interface>
      </nodeType>
      <nodeType name="Material" metatypeId="urn:vscene:node:Material">
        <interface>ambientIntensity</interface>
        <interface>diffuseColor</interface>
        <interface>emissiveColor</interface>
        <interface>shininess</interface>
        <interface>specularColor</interface>
        <interface>transparency</interface>
      </nodeType>
    </level>
    <level number="2">
      <requires component="Shape" level="1"/>
    </level>
    <level number="3">
      <requires component="Shape" level="2"/>
    </level>
  </component>

  <component name="Geometry3D">
    <level number="1">
      <requires component="Shape" level="1"/>
      <nodeType name="Box" metatypeId="urn:vscene:node:Box">
        <interface>size</interface>
      </nodeType>
      <nodeType name="Color" metatypeId="urn:vscene:node:Color">
        <interface>color</interface>
      </nodeType>
      <nodeType name="Coordinate" metatypeId="urn:vscene:node:Coordinate">
        <interface>point</interface>
      </nodeType>
    </level>
    <level number="2">
      <requires component="Geometry3D" level="1"/>
      <nodeType name="IndexedFaceSet" metatypeId="urn:vscene:node:IndexedFaceSet">
        <interface>color</interface>
        <interface>coord</interface>
        <interface>normal</interface>
        <interface>texCoord</interface>
        <interface>coordIndex</interface>
        <interface>colorIndex</interface>
        <interface>normalIndex</interface>
        <interface>texCoordIndex</interface>
        <interface>ccw</interface>
        <interface>solid</interface>
      </nodeType>
    </level>
    <level number="4">
      <requires component="Geometry3D" level="2"/>
    </level>
  </component>

  <component name="Lighting">
    <level number="2">
      <requires component="Core" level="1"/>
      <nodeType name="PointLight" metatypeId="urn:vscene:node:PointLight">
        <interface>ambientIntensity</interface>
        <interface>attenuation</interface>
        <interface>color</interface>
        <interface>intensity</interface>
        <interface>location</interface>
        <interface>on</interface>
        <interface>radius</interface>
      </nodeType>
      <nodeType name="DirectionalLight" metatypeId="urn:vscene:node:DirectionalLight">
        <interface>ambientIntensity</interface>
        <interface>color</interface>
        <interface>direction</interface>
        <interface>intensity</interface>
        <interface>on</interface>
      </nodeType>
    </level>
    <level number="3">
      <requires component="Lighting" level="2"/>
    </level>
  </component>

  <component name="Navigation">
    <level number="2">
      <requires component="Core" level="1"/>
      <nodeType name="Viewpoint" metatypeId="urn:vscene:node:Viewpoint">
        <interface>set_bind</interface>
        <interface>is_bound</interface>
        <interface>bindTime</interface>
        <interface>fieldOfView</interface>
        <interface>jump</interface>
        <interface>orientation</interface>
        <interface>position</interface>
        <interface>description</interface>
      </nodeType>
      <nodeType name="NavigationInfo" metatypeId="urn:vscene:node:NavigationInfo">
        <interface>set_bind</interface>
        <interface>is_bound</interface>
        <interface>bindTime</interface>
        <interface>avatarSize</interface>
        <interface>headlight</interface>
        <interface>speed</interface>
        <interface>type</interface>
        <interface>visibilityLimit</interface>
      </nodeType>
      <nodeType name="Background" metatypeId="urn:vscene:node:Background">
        <interface>set_bind</interface>
        <interface>is_bound</interface>
        <interface>bindTime</interface>
        <interface>skyColor</interface>
        <interface>groundColor</interface>
      </nodeType>
      <nodeType name="Fog" metatypeId="urn:vscene:node:Fog">
        <interface>set_bind</interface>
        <interface>is_bound</interface>
        <interface>bindTime</interface>
        <interface>color</interface>
        <interface>visibilityRange</interface>
        <interface>fogType</interface>
      </nodeType>
    </level>
  </component>

  <component name="KeyDeviceSensor">
    <level number="1">
      <requires component="Core" level="1"/>
      <nodeType name="KeyDeviceSensor" metatypeId="urn:vscene:node:KeyDeviceSensor">
        <interface>enabled</interface>
        <interface>keyPress</interface>
        <interface>keyRelease</interface>
        <interface>isActive</interface>
      </nodeType>
    </level>
  </component>

  <component name="Interpolation">
    <level number="2">
      <requires component="Core" level="1"/>
      <nodeType name="PositionInterpolator" metatypeId="urn:vscene:node:PositionInterpolator">
        <interface>key</interface>
        <interface>keyValue</interface>
        <interface>set_fraction</interface>
        <interface>value_changed</interface>
      </nodeType>
      <nodeType name="TimeSensor" metatypeId="urn:vscene:node:TimeSensor">
        <interface>cycleInterval</interface>
        <interface>enabled</interface>
        <interface>loop</interface>
        <interface>startTime</interface>
        <interface>stopTime</interface>
        <interface>cycleTime</interface>
        <interface>fraction_changed</interface>
        <interface>isActive</interface>
        <interface>time</interface>
      </nodeType>
    </level>
  </component>

  <component name="Compact1997">
    <level number="1">
      <requires component="Core" level="1"/>
      <requires component="Grouping" level="1"/>
      <requires component="Shape" level="1"/>
      <requires component="Geometry3D" level="1"/>
      <requires component="Lighting" level="2"/>
      <requires component="Navigation" level="2"/>
      <requires component="Interpolation" level="2"/>
    </level>
  </component>
</components>
`
