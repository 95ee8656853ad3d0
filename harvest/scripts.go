package harvest

// In-page scripts. Each is a function expression evaluated via
// sitepdf.Page.Eval and returns a string so results survive the capability
// boundary uniformly.

// expandCollapsedNavJS clicks every collapsed navigation category and
// returns the number of elements clicked. Newly revealed categories are
// picked up by the caller's next round.
const expandCollapsedNavJS = `() => {
	const selectors = [
		'.menu__list-item--collapsed .menu__link--sublist',
		'.menu__list-item--collapsed .menu__caret',
		'.md-nav__item--nested > input:not(:checked) + label',
		'li.collapsed > a',
		'nav [aria-expanded="false"]',
	];
	let clicked = 0;
	for (const sel of selectors) {
		for (const el of document.querySelectorAll(sel)) {
			el.click();
			clicked++;
		}
	}
	return String(clicked);
}`

// documentHTMLJS returns the full rendered document markup.
const documentHTMLJS = `() => document.documentElement.outerHTML`

// expandDisclosuresJS opens every collapsed inline disclosure so hidden
// content becomes part of the extracted fragment.
const expandDisclosuresJS = `() => {
	let opened = 0;
	for (const el of document.querySelectorAll('details:not([open])')) {
		el.setAttribute('open', 'true');
		opened++;
	}
	return String(opened);
}`

// stripLazyLoadJS removes lazy-load hints so images render during print.
const stripLazyLoadJS = `() => {
	let stripped = 0;
	for (const img of document.querySelectorAll('img[loading="lazy"]')) {
		img.removeAttribute('loading');
		stripped++;
	}
	return String(stripped);
}`

// stampAnchorJS sets the content root's element id to the node's anchor id
// (what makes the fragment addressable once merged) and forces a page
// break after it so content does not bleed into the next page.
const stampAnchorJS = `(sel, id) => {
	const el = document.querySelector(sel);
	if (!el) return '';
	el.id = id;
	el.style.pageBreakAfter = 'always';
	return el.id;
}`

// extractContentJS returns the content root's full markup, including the
// root element itself.
const extractContentJS = `(sel) => {
	const el = document.querySelector(sel);
	return el ? el.outerHTML : '';
}`
